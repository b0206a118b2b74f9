package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joy095/rental/logger"
	"github.com/joy095/rental/models/shared_models"
	"github.com/joy095/rental/utils/jwt_parse"
)

// AuthMiddleware checks the authentication of the request using the JWT
// bearer token and ensures a user identity is present in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		jwt_parse.ParseJWTToken()(c)

		if c.IsAborted() {
			return
		}

		if _, exists := c.Get("user_id"); !exists {
			logger.ErrorLogger.Error("User ID not found in context after JWT parsing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: missing user identification from token"})
			return
		}

		c.Next()
	}
}

// AdminMiddleware restricts the route to administrator principals. It must
// run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			logger.WarnLogger.Warn("Role claim missing on admin-only route")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != shared_models.RoleAdmin {
			logger.WarnLogger.Warnf("Non-admin principal attempted admin-only route (role=%v)", role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}
