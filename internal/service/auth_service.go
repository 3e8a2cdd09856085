package service

import (
	"fmt"
	"time"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/internal/util"
	"github.com/darshan27122006-bit/Equilearn/pkg/logger"

	"go.uber.org/zap"
)

// Default accounts seeded on first run.
const (
	SeedAdminID   = "admin-001"
	SeedTeacherID = "teacher-001"
	SeedStudentID = "student-001"
	SeedInstID    = "inst-001"

	SeedAdminEmail   = "admin@mlassistant.com"
	SeedTeacherEmail = "teacher@mlassistant.com"
	SeedStudentEmail = "student@mlassistant.com"
)

var seedLanguages = []string{"en", "hi", "ta", "te", "kn", "ml", "bn"}

// AuthResult is the value-style outcome of auth operations. Failures
// are carried in Error, never panicked, so callers can render inline
// messages without exception plumbing.
type AuthResult struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user,omitempty"`
	Token   string      `json:"token,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// AuthService owns registration, credential verification and the
// current-session slot, layered on the persistent store.
//
// Passwords are stored and compared in plaintext and the issued token
// is an unsigned local encoding. That is the contract of this core,
// kept on purpose; hardening it (salted hashes, server-verified
// tokens) is a separately scoped redesign of the real backend.
type AuthService struct {
	Store *store.Store
}

func NewAuthService(st *store.Store) *AuthService {
	return &AuthService{Store: st}
}

// Bootstrap seeds one admin, one teacher, one student and the demo
// institution when the users collection is empty. Safe to call on
// every start; the only guard is "users empty", so after any
// registration it no-ops even if fewer than three users remain.
func (s *AuthService) Bootstrap() error {
	if len(s.Store.Users().GetAll()) > 0 {
		return nil
	}

	now := time.Now()
	seeded := []model.User{
		{
			ID: SeedAdminID, Name: "Admin User", Email: SeedAdminEmail,
			Password: "admin123", Role: model.Admin, Language: "en", CreatedAt: now,
		},
		{
			ID: SeedTeacherID, Name: "Teacher Demo", Email: SeedTeacherEmail,
			Password: "teacher123", Role: model.Teacher, Language: "en",
			InstitutionID: SeedInstID, CreatedAt: now,
		},
		{
			ID: SeedStudentID, Name: "Student Demo", Email: SeedStudentEmail,
			Password: "student123", Role: model.Student, Language: "en",
			InstitutionID: SeedInstID, CreatedAt: now,
		},
	}
	if err := s.Store.Users().SetAll(seeded); err != nil {
		return err
	}

	if err := s.Store.Institutions().Add(model.Institution{
		ID:                 SeedInstID,
		Name:               "Demo Institution",
		SupportedLanguages: seedLanguages,
		AdminID:            SeedAdminID,
		CreatedAt:          now,
	}); err != nil {
		return err
	}

	logger.Log.Info("seeded default accounts",
		zap.Strings("ids", []string{SeedAdminID, SeedTeacherID, SeedStudentID}))
	return nil
}

// Register creates a new user unless the email is already taken. The
// email check is a case-sensitive exact match. The returned user has
// the password stripped; the stored record keeps it.
func (s *AuthService) Register(name, email, password string, role model.UserRole, language, institutionID string) AuthResult {
	for _, u := range s.Store.Users().GetAll() {
		if u.Email == email {
			return AuthResult{Error: util.ErrDuplicateEmail.Error()}
		}
	}

	user := model.User{
		ID:            fmt.Sprintf("%s-%d", role, time.Now().UnixMilli()),
		Name:          name,
		Email:         email,
		Password:      password,
		Role:          role,
		Language:      language,
		InstitutionID: institutionID,
		CreatedAt:     time.Now(),
	}
	if err := s.Store.Users().Add(user); err != nil {
		return AuthResult{Error: err.Error()}
	}

	sanitized := user.Sanitized()
	return AuthResult{Success: true, User: &sanitized}
}

// Login verifies email and password against the stored users. On
// success it writes the sanitized user into the session slot and
// issues the session token.
func (s *AuthService) Login(email, password string) AuthResult {
	for _, u := range s.Store.Users().GetAll() {
		if u.Email == email && u.Password == password {
			sanitized := u.Sanitized()
			if err := s.Store.SetCurrentUser(sanitized); err != nil {
				return AuthResult{Error: err.Error()}
			}
			return AuthResult{
				Success: true,
				User:    &sanitized,
				Token:   util.EncodeSessionToken(u.ID),
			}
		}
	}
	return AuthResult{Error: util.ErrInvalidCredentials.Error()}
}

// Logout clears the session slot. Previously issued tokens are not
// tracked and therefore not invalidated.
func (s *AuthService) Logout() error {
	return s.Store.ClearCurrentUser()
}

func (s *AuthService) CurrentUser() *model.User {
	return s.Store.CurrentUser()
}

func (s *AuthService) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

func (s *AuthService) HasRole(role model.UserRole) bool {
	u := s.CurrentUser()
	return u != nil && u.Role == role
}

// FindByID resolves a stored user, used by the auth middleware to turn
// a token's user id back into a user record.
func (s *AuthService) FindByID(userID string) (model.User, bool) {
	return s.Store.Users().Find(userID)
}

// UpdateProfile shallow-merges the patch into the stored user and
// refreshes the session slot when the session user was updated. An
// unknown id reports found=false rather than an error.
func (s *AuthService) UpdateProfile(userID string, patch map[string]any) (bool, error) {
	found, err := s.Store.Users().Update(userID, patch)
	if err != nil || !found {
		return found, err
	}
	if cur := s.Store.CurrentUser(); cur != nil && cur.ID == userID {
		if u, ok := s.Store.Users().Find(userID); ok {
			if err := s.Store.SetCurrentUser(u.Sanitized()); err != nil {
				return true, err
			}
		}
	}
	return true, nil
}
