package middleware

import (
	"net/http"
	"strings"

	"fundilink/internal/infrastructure/auth"
	"fundilink/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ContextActorID    = "actor_id"
	ContextActorEmail = "actor_email"
	ContextActorRole  = "actor_role"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// Auth validates the bearer token and stashes the actor's identity in
// the request context. Every protected handler reads the actor id from
// here, never from the request body.
func Auth(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ContextActorID, claims.UserID)
		c.Set(ContextActorEmail, claims.Email)
		c.Set(ContextActorRole, claims.Role)
		c.Next()
	}
}

// ActorID returns the authenticated actor id, empty if unauthenticated.
func ActorID(c *gin.Context) string {
	return c.GetString(ContextActorID)
}

func ActorEmail(c *gin.Context) string {
	return c.GetString(ContextActorEmail)
}
