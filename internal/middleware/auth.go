package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-platform/internal/auth"
	"github.com/BruksfildServices01/barber-platform/internal/config"
	"github.com/BruksfildServices01/barber-platform/internal/token"
)

const ContextActor = "actor"

// Actor pulls the authenticated actor out of the gin context. Only valid
// behind AuthMiddleware.
func Actor(c *gin.Context) auth.Actor {
	return c.MustGet(ContextActor).(auth.Actor)
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		actor, err := token.Verify(cfg.JWTSecret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextActor, actor)
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the actor has one of the given roles.
func RequireRoles(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := Actor(c)
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
