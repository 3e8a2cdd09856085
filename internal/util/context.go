package util

import (
	"github.com/darshan27122006-bit/Equilearn/internal/model"

	"github.com/gin-gonic/gin"
)

// GetUserFromContext returns the authenticated user placed by the auth
// middleware, or nil.
func GetUserFromContext(c *gin.Context) *model.User {
	v, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}

// GetTokenFromContext returns the raw bearer token so services can
// forward it to the external AI backend.
func GetTokenFromContext(c *gin.Context) string {
	v, exists := c.Get("token")
	if !exists {
		return ""
	}
	token, _ := v.(string)
	return token
}
