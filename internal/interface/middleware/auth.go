package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogapi/pkg/helpers"
	"blogapi/pkg/response"
)

// Auth validates the bearer token and injects userID, userEmail and
// userRoles into the Gin context.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing authorization header", nil)
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error[any](c, http.StatusUnauthorized, "invalid authorization format, use 'Bearer <token>'", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(parts[1])
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Subject)
		c.Set("userRoles", claims.Roles)
		c.Next()
	}
}
