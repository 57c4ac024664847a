package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const CorrelationHeader = "X-Correlation-ID"

// Correlation echoes the caller's correlation id, minting one when the
// header is absent so every response is traceable.
func Correlation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(CorrelationHeader, id)
		c.Set("correlation_id", id)
		c.Next()
	}
}
