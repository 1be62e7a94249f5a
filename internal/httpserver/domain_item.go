package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "items-api/internal/item/delivery/http"
	itemRepo "items-api/internal/item/repository/postgre"
	itemUC "items-api/internal/item/usecase"
	"items-api/internal/middleware"
)

// setupItemDomain wires repository, use case and handler for items.
// The repository takes its connection from the request session, so it holds no pool.
func (srv *HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := itemRepo.New(srv.l)
	uc := itemUC.New(repo, srv.l)
	h := itemHTTP.New(srv.l, uc)

	itemHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Item domain registered at %s/items", srv.routePrefix)
}
