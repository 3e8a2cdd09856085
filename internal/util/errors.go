package util

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("record not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotEnrolled        = errors.New("student not enrolled in classroom")
)
