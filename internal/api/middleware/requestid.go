package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader names the header carrying the per-request ID.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key the logger middleware reads.
const requestIDKey = "request_id"

// RequestID tags each request with a unique ID, reusing the caller's
// when one is supplied.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
