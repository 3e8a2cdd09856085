package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"password,omitempty"`
	Role          UserRole  `json:"role"`
	Language      string    `json:"language"`
	InstitutionID string    `json:"institutionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Sanitized returns a copy safe to hand back to callers: the stored
// record keeps the plaintext password, the returned value never does.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
