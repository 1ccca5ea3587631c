package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidToken is returned when the bearer token fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when the bearer token has expired.
	ErrExpiredToken = errors.New("token expired")
)

// AuthErrorCode defines error codes for authentication errors.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010002"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-010003"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-010004"
)
