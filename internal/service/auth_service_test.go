package service

import (
	"testing"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(store.New(store.NewMemoryBackend(), "test"))
}

func TestBootstrapSeedsDefaults(t *testing.T) {
	auth := newAuthService(t)
	require.NoError(t, auth.Bootstrap())

	users := auth.Store.Users().GetAll()
	require.Len(t, users, 3)
	assert.Equal(t, SeedAdminID, users[0].ID)
	assert.Equal(t, SeedTeacherID, users[1].ID)
	assert.Equal(t, SeedStudentID, users[2].ID)

	institutions := auth.Store.Institutions().GetAll()
	require.Len(t, institutions, 1)
	assert.Equal(t, SeedInstID, institutions[0].ID)
	assert.Equal(t, "Demo Institution", institutions[0].Name)
	assert.Equal(t, SeedAdminID, institutions[0].AdminID)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	auth := newAuthService(t)
	require.NoError(t, auth.Bootstrap())
	require.NoError(t, auth.Bootstrap())

	assert.Len(t, auth.Store.Users().GetAll(), 3)
	assert.Len(t, auth.Store.Institutions().GetAll(), 1)
}

func TestLoginSeededTeacher(t *testing.T) {
	auth := newAuthService(t)
	require.NoError(t, auth.Bootstrap())

	result := auth.Login("teacher@mlassistant.com", "teacher123")
	require.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.Equal(t, model.Teacher, result.User.Role)
	assert.Equal(t, SeedTeacherID, result.User.ID)
	assert.NotEmpty(t, result.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	auth := newAuthService(t)
	require.NoError(t, auth.Bootstrap())

	result := auth.Login("teacher@mlassistant.com", "wrong")
	assert.False(t, result.Success)
	assert.Equal(t, util.ErrInvalidCredentials.Error(), result.Error)
	assert.Nil(t, result.User)
	assert.Nil(t, auth.CurrentUser())
}

func TestRegisterThenLogin(t *testing.T) {
	auth := newAuthService(t)

	reg := auth.Register("New Student", "new@example.com", "pass123", model.Student, "hi", "")
	require.True(t, reg.Success)
	require.NotNil(t, reg.User)
	// The returned user never carries the password.
	assert.Empty(t, reg.User.Password)

	login := auth.Login("new@example.com", "pass123")
	require.True(t, login.Success)
	assert.Empty(t, login.User.Password)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newAuthService(t)
	require.True(t, auth.Register("A", "dup@example.com", "pw1", model.Student, "en", "").Success)
	before := auth.Store.Users().GetAll()

	result := auth.Register("B", "dup@example.com", "pw2", model.Teacher, "en", "")
	assert.False(t, result.Success)
	assert.Equal(t, util.ErrDuplicateEmail.Error(), result.Error)
	// Failed registration must not mutate the collection.
	assert.Equal(t, before, auth.Store.Users().GetAll())
}

func TestRegisterIDCarriesRole(t *testing.T) {
	auth := newAuthService(t)

	result := auth.Register("T", "t@example.com", "pw", model.Teacher, "en", "")
	require.True(t, result.Success)
	assert.Regexp(t, `^teacher-\d+$`, result.User.ID)
}

func TestLogoutClearsSession(t *testing.T) {
	auth := newAuthService(t)
	require.NoError(t, auth.Bootstrap())

	require.True(t, auth.Login("student@mlassistant.com", "student123").Success)
	require.NotNil(t, auth.CurrentUser())
	assert.True(t, auth.IsAuthenticated())

	require.NoError(t, auth.Logout())
	assert.Nil(t, auth.CurrentUser())
	assert.False(t, auth.IsAuthenticated())
}

func TestHasRole(t *testing.T) {
	auth := newAuthService(t)
	require.NoError(t, auth.Bootstrap())

	assert.False(t, auth.HasRole(model.Admin))
	require.True(t, auth.Login("admin@mlassistant.com", "admin123").Success)
	assert.True(t, auth.HasRole(model.Admin))
	assert.False(t, auth.HasRole(model.Student))
}

func TestUpdateProfileRefreshesSession(t *testing.T) {
	auth := newAuthService(t)
	require.NoError(t, auth.Bootstrap())
	require.True(t, auth.Login("student@mlassistant.com", "student123").Success)

	found, err := auth.UpdateProfile(SeedStudentID, map[string]any{"language": "ta"})
	require.NoError(t, err)
	assert.True(t, found)

	cur := auth.CurrentUser()
	require.NotNil(t, cur)
	assert.Equal(t, "ta", cur.Language)
	assert.Empty(t, cur.Password)
}

func TestUpdateProfileUnknownID(t *testing.T) {
	auth := newAuthService(t)
	require.NoError(t, auth.Bootstrap())

	found, err := auth.UpdateProfile("ghost-1", map[string]any{"name": "x"})
	require.NoError(t, err)
	assert.False(t, found)
}
