package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects authenticated requests whose actor has none of the
// allowed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorRole := ActorRole(c)
		for _, role := range roles {
			if actorRole == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
	}
}
