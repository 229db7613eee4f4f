// Package common defines shared constants and sentinel errors used across
// the layers of identity-service. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Password hashing errors. ErrHashingFailed covers both a failure to
	// produce a hash and a stored hash that cannot be parsed; it is never
	// returned for a plain password mismatch.
	ErrHashingFailed = errors.New("hashing failed")

	// Token lifecycle errors, in the order the validator checks them:
	// structure first, then signature, then expiry.
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")
)
