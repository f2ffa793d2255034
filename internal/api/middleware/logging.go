package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"microwave-converter/internal/logger"
)

// RequestLogger writes one line per request with method, path, status,
// duration and request ID.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString(requestIDKey),
		)
	}
}
