package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"items-api/pkg/response"
)

// Create godoc
// @Summary     Create a new item
// @Description Creates a new item with the provided name and optional description.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body     createReq true "Item data"
// @Success     201  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Service Unavailable"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.bindError(err))
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Create", err)
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List items
// @Description Returns every item in insertion order.
// @Tags        Items
// @Produce     json
// @Success     200 {array}  itemResp
// @Failure     503 {object} response.Resp "Service Unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.fail(c, "uc.List", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Items
// @Produce     json
// @Param       id  path     int true "Item ID"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Service Unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.bindError(err))
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.fail(c, "uc.Detail", err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update an item
// @Description Partially updates an item. Omitted or null fields keep their stored value.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path     int       true "Item ID"
// @Param       body body     updateReq true "Fields to update"
// @Success     200  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     503  {object} response.Resp "Service Unavailable"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [PATCH]
// @Router      /items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.bindError(err))
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Update", err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID.
// @Tags        Items
// @Produce     json
// @Param       id  path     int true "Item ID"
// @Success     204 "No Content"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Service Unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.bindError(err))
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.fail(c, "uc.Delete", err)
		return
	}

	response.NoContent(c)
}

// fail renders a use-case error. Only server-side faults are logged as errors.
func (h *handler) fail(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	httpErr := h.mapError(err)

	switch {
	case httpErr.Code == http.StatusServiceUnavailable:
		h.l.Warnf(ctx, "%s: %v", op, err)
	case httpErr.Code >= http.StatusInternalServerError:
		h.l.Errorf(ctx, "%s: %v", op, err)
	default:
		h.l.Debugf(ctx, "%s: %v", op, err)
	}

	response.Error(c, httpErr)
}
