package util

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token := EncodeSessionToken("student-001")

	st, err := DecodeSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "student-001", st.UserID)
	assert.Greater(t, st.Timestamp, int64(0))
}

func TestDecodeSessionTokenWithoutPadding(t *testing.T) {
	token := strings.TrimRight(EncodeSessionToken("admin-001"), "=")

	st, err := DecodeSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-001", st.UserID)
}

func TestDecodeSessionTokenInvalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not base64", "!!!not-base64!!!"},
		{"not json", base64.StdEncoding.EncodeToString([]byte("plain text"))},
		{"missing user id", base64.StdEncoding.EncodeToString([]byte(`{"timestamp":123}`))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSessionToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestResolveUserIDSessionToken(t *testing.T) {
	token := EncodeSessionToken("teacher-001")

	// Works with and without a configured secret.
	id, err := ResolveUserID(token, "")
	require.NoError(t, err)
	assert.Equal(t, "teacher-001", id)

	id, err = ResolveUserID(token, "some-secret")
	require.NoError(t, err)
	assert.Equal(t, "teacher-001", id)
}

func TestResolveUserIDSignedJWT(t *testing.T) {
	const secret = "test-secret"
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin-001",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	id, err := ResolveUserID(signed, secret)
	require.NoError(t, err)
	assert.Equal(t, "admin-001", id)

	// Without the secret the JWT is not a valid session token either.
	_, err = ResolveUserID(signed, "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
