package middleware

import (
	"net/http"
	"strings"

	"learning_platform/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey   = "authUser"
	AuthEmailKey  = "authEmail"
	AuthRoleKey   = "authRole"
	AuthClaimsKey = "authClaims"
)

// JWTAuthMiddleware accepts only "Authorization: Bearer <token>".
// A missing or unusable header is 401; a token that fails verification for any
// reason is 403, and the reason is not disclosed.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(AuthUserKey, claims.ID)
		c.Set(AuthEmailKey, claims.Email)
		c.Set(AuthRoleKey, claims.Role)
		c.Set(AuthClaimsKey, claims)

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// AuthUserID returns the authenticated principal id set by JWTAuthMiddleware
func AuthUserID(c *gin.Context) (string, bool) {
	id := c.GetString(AuthUserKey)
	return id, id != ""
}
