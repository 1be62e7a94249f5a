package middleware

import (
	"github.com/gin-gonic/gin"

	"items-api/pkg/postgre"
)

// Session gives the request a lazily acquired database session.
// The session is released once the handler chain returns, panics included,
// and is never acquired if no handler touches the database.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := postgre.NewScope(m.provider)
		c.Request = c.Request.WithContext(postgre.WithScope(c.Request.Context(), scope))

		defer func() {
			if err := scope.Release(); err != nil {
				m.l.Warnf(c.Request.Context(), "middleware.Session.Release: %v", err)
			}
		}()

		c.Next()
	}
}
