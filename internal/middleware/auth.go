package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"impilo/registry/internal/config"
	"impilo/registry/internal/security"
)

// AdminAuth is the capability check for moderation routes: a valid bearer
// token with the admin role, or the request is denied.
func AdminAuth(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseAdminToken(tokenStr, cfg.Security.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Set("admin_claims", *claims)

		c.Next()
	}
}
