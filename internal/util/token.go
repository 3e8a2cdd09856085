package util

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// SessionToken is the reversible encoding this core issues on login:
// base64 of {userId, timestamp}. It carries no signature and no expiry
// and authenticates nothing server-side; it is an opaque session
// handle for the local UI, not a security boundary.
type SessionToken struct {
	UserID    string `json:"userId"`
	Timestamp int64  `json:"timestamp"`
}

func EncodeSessionToken(userID string) string {
	raw, _ := json.Marshal(SessionToken{
		UserID:    userID,
		Timestamp: time.Now().UnixMilli(),
	})
	return base64.StdEncoding.EncodeToString(raw)
}

func DecodeSessionToken(token string) (*SessionToken, error) {
	// Some encoders drop the padding.
	if m := len(token) % 4; m != 0 {
		token += strings.Repeat("=", 4-m)
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	var st SessionToken
	if err := json.Unmarshal(raw, &st); err != nil || st.UserID == "" {
		return nil, ErrInvalidToken
	}
	return &st, nil
}

// ResolveUserID extracts the authenticated user id from a bearer
// token. A signed JWT (from a hardened deployment fronting this core)
// is tried first when a secret is configured, then the unsigned
// session handle.
func ResolveUserID(token, secret string) (string, error) {
	if secret != "" {
		if sub, err := parseJWTSubject(token, secret); err == nil {
			return sub, nil
		}
	}
	st, err := DecodeSessionToken(token)
	if err != nil {
		return "", err
	}
	return st.UserID, nil
}

func parseJWTSubject(tokenString, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
