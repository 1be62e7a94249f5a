package http

import (
	"github.com/gin-gonic/gin"

	"items-api/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every item route runs inside a request-scoped database session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.Session())
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.PATCH("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}
