package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "items-api/pkg/errors"
	"items-api/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Items CRUD API"
	HealthVersion = "1.0.0"
	ServiceName   = "items-api"

	readyPingTimeout = 2 * time.Second
)

// rootCheck handles the service banner
// @Summary Service banner
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Banner"
// @Router / [get]
func (srv *HTTPServer) rootCheck(c *gin.Context) {
	response.OK(c, gin.H{"message": HealthMessage})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready only when the database answers a ping.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Database unreachable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyPingTimeout)
	defer cancel()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck.PingContext: %v", err)
		response.Error(c, pkgErrors.ErrServiceUnavailable)
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
