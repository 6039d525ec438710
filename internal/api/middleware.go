package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// recovery turns a handler panic into a 500 JSON response and logs it.
func recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in api handler",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"panic", r,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": errServer})
			}
		}()
		c.Next()
	}
}
