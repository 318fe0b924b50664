package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"fixly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Context keys set for authenticated requests.
const (
	CtxUserID   = "userID"
	CtxUserRole = "userRole"
)

// JWTAuthMiddleware resolves the bearer token to an actor identity and
// stores it on the request context. Revoked tokens are tracked in the auth
// cache; a nil client skips that check.
func JWTAuthMiddleware(authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		if authCache != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			revoked, err := authCache.Exists(ctx, utils.AuthCachePrefix+utils.HashToken(tokenString)).Result()
			if err == nil && revoked > 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
				return
			}
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxUserRole, role)
		c.Next()
	}
}

// ActorID returns the authenticated user's id, or "" when unauthenticated.
func ActorID(c *gin.Context) string {
	id, _ := c.Get(CtxUserID)
	s, _ := id.(string)
	return s
}

// ActorRole returns the authenticated user's role, or "" when unauthenticated.
func ActorRole(c *gin.Context) string {
	role, _ := c.Get(CtxUserRole)
	s, _ := role.(string)
	return s
}
