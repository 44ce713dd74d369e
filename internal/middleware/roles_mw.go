package middleware

import (
	"net/http"
	"slices"

	"learning_platform/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific principal roles
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(AuthRoleKey)
		if userRole == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You do not have permission to perform this action"})
			return
		}

		if !slices.Contains(allowedRoles, userRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You do not have permission to perform this action"})
			return
		}

		c.Next()
	}
}

// TeacherMiddleware lets only teachers through
func TeacherMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleTeacher)
}
