// Package common defines shared constants and sentinel errors used across
// the lookbook server. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors. ErrorNotFound covers both "no such row" and
	// "row exists but is owned by someone else"; the two are deliberately
	// indistinguishable so that scoped lookups do not leak existence.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Registration errors.
	ErrDuplicateEmail = errors.New("email already registered")

	// Auth errors.
	ErrMissingToken   = errors.New("api key is missing")
	ErrInvalidToken   = errors.New("invalid api key")
	ErrBadCredentials = errors.New("incorrect credentials")
)
