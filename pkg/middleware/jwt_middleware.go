package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"talentflow/pkg/utils"
)

// JWTAuthMiddleware checks the bearer token and stores its subject and role
// on the context. Without a configured secret every request passes.
func JWTAuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tokens.Enabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("Role", claims.Role)
		c.Next()
	}
}

func RoleMiddleware(tokens *utils.TokenManager, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tokens.Enabled() {
			c.Next()
			return
		}

		if c.GetString("Role") != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
