package middleware

import (
	"log"
	"math"
	"net/http"

	"fundilink/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit gates a route group per authenticated actor. The 429
// payload carries retry_after in whole seconds, rounded up.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ActorID(c)
		if key == "" {
			key = c.ClientIP()
		}

		ok, retryAfter := limiter.Allow(key)
		if !ok {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			log.Printf("[http][ratelimit] limited actor=%s retry_after=%ds", key, seconds)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"ok":          false,
				"error":       "RATE_LIMITED",
				"message":     "Too many payment attempts, slow down",
				"retry_after": seconds,
			})
			return
		}
		c.Next()
	}
}
