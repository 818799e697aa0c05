package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devlink_backend/internal/models"
)

// RoleMiddleware restricts an API route to one role using the token
// claim. JSON clients get a 403 here; browser dashboard routes go
// through RequireUserType instead, which consults the profile store
// and redirects.
func RoleMiddleware(required models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ctxUserTypeKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok || models.UserType(roleStr) != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// GetUserType extracts the role claim from the gin context.
func GetUserType(c *gin.Context) models.UserType {
	roleVal, exists := c.Get(ctxUserTypeKey)
	if !exists {
		return ""
	}

	roleStr, ok := roleVal.(string)
	if !ok {
		return ""
	}
	return models.UserType(roleStr)
}
