package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"items-api/internal/middleware"
	"items-api/internal/model"
	"items-api/pkg/response"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.provider, middleware.Config{
		RateLimitPerMin: srv.rateLimitPerMin,
	})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(
		mw.RequestID(),
		mw.AccessLog(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			srv.l.Errorf(c.Request.Context(), "httpserver.recovery: %v", recovered)
			response.InternalError(c, nil)
		}),
	)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
		if len(srv.corsAllowedOrigins) == 0 {
			srv.l.Warnf(ctx, "CORS allows every origin in production")
		}
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootCheck)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under the route prefix.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	api := srv.gin.Group(srv.routePrefix, mw.RateLimit())
	srv.setupItemDomain(context.Background(), api, mw)
}

// Handler returns the engine wrapped with CORS handling.
func (srv *HTTPServer) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: srv.corsAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
	})
	return c.Handler(srv.gin)
}
