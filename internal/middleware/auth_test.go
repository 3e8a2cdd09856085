package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darshan27122006-bit/Equilearn/internal/config"
	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/service"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := service.NewAuthService(store.New(store.NewMemoryBackend(), "test"))
	require.NoError(t, auth.Bootstrap())

	router := gin.New()
	protected := router.Group("/api")
	protected.Use(AuthMiddleware(auth, &config.Config{}))
	protected.GET("/whoami", func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "password": user.Password})
	})
	protected.GET("/admin-only", RoleMiddleware(model.Admin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	protected.GET("/teacher-only", RoleMiddleware(model.Teacher), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, auth
}

func doRequest(router *gin.Engine, path, token string, inQuery bool) *httptest.ResponseRecorder {
	target := path
	if inQuery && token != "" {
		target += "?token=" + token
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if !inQuery && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAcceptsHeaderAndQueryToken(t *testing.T) {
	router, _ := newAuthRouter(t)
	token := util.EncodeSessionToken(service.SeedStudentID)

	w := doRequest(router, "/api/whoami", token, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), service.SeedStudentID)
	// The context user is sanitized.
	assert.NotContains(t, w.Body.String(), "student123")

	w = doRequest(router, "/api/whoami", token, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	router, _ := newAuthRouter(t)

	tests := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"garbage", "!!!"},
		{"unknown user", util.EncodeSessionToken("ghost-1")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "/api/whoami", tt.token, false)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	router, _ := newAuthRouter(t)

	studentToken := util.EncodeSessionToken(service.SeedStudentID)
	teacherToken := util.EncodeSessionToken(service.SeedTeacherID)
	adminToken := util.EncodeSessionToken(service.SeedAdminID)

	assert.Equal(t, http.StatusForbidden, doRequest(router, "/api/admin-only", studentToken, false).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(router, "/api/admin-only", teacherToken, false).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "/api/admin-only", adminToken, false).Code)

	assert.Equal(t, http.StatusOK, doRequest(router, "/api/teacher-only", teacherToken, false).Code)
	// Admins pass every role gate.
	assert.Equal(t, http.StatusOK, doRequest(router, "/api/teacher-only", adminToken, false).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(router, "/api/teacher-only", studentToken, false).Code)
}
