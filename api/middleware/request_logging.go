package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"inkwell/internal/logger"
)

// RequestLogging logs every request with its status and elapsed time.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		durationMillis := time.Since(start).Milliseconds()

		logger.InfoWithFields("api_request", logger.Fields{
			"method":      method,
			"path":        path,
			"status":      status,
			"duration_ms": durationMillis,
			"request_id":  c.GetString("request_id"),
		})
	}
}
