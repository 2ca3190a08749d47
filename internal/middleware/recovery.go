package middleware

import (
	"mango-alerts-srv/pkg/log"
	"mango-alerts-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery returns a middleware that recovers from handler panics and
// sends the masked error response instead of crashing the process.
func Recovery(l log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Errorf(c.Request.Context(), "internal.middleware.Recovery: panic: %v", rec)
				response.PanicError(c, rec)
				c.Abort()
			}
		}()
		c.Next()
	}
}
