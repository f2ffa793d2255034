package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microwave-converter/internal/api/models"
)

// ErrorHandler turns panics into a JSON 500 instead of a dropped
// connection.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			msg = s
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
	})
}
