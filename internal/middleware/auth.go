package middleware

import (
	"strings"

	"github.com/darshan27122006-bit/Equilearn/internal/config"
	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/service"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token to a stored user. Signed
// JWTs (from a hardened deployment) are accepted alongside the
// unsigned session tokens this core issues.
func AuthMiddleware(auth *service.AuthService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		userID, err := util.ResolveUserID(tokenString, cfg.Auth.JWTSecret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		user, ok := auth.FindByID(userID)
		if !ok {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		sanitized := user.Sanitized()
		c.Set("user", &sanitized)
		c.Set("token", tokenString)
		c.Next()
	}
}

// RoleMiddleware gates a route group by role. Admins pass every gate.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if user.Role == model.Admin {
			c.Next()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		util.Forbidden(c)
		c.Abort()
	}
}
