package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request once the response is done.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		m.l.Infof(c.Request.Context(), "%s %s %d %s %s",
			c.Request.Method, path, c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}
