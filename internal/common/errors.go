// Package common defines shared constants and sentinel errors used across
// client and server layers of the bookshop. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth header errors.
	ErrMissingAuthHeader = errors.New("authorization header missing")
	ErrMissingToken      = errors.New("token missing")

	// Token errors (invalid signature, malformed structure, expired lifetime).
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token expired")
)
