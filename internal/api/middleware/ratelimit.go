package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"microwave-converter/internal/api/models"
)

const retryAfterSeconds = 1

// RateLimit rejects requests once the shared limiter runs out of tokens.
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "RATE_LIMITED",
					Message: "Too many requests. Please try again later.",
				},
			})
			return
		}
		c.Next()
	}
}
