// Package credentials implements credential storage and the signup/login
// business logic built on top of it.
package credentials

import "time"

// Credential is a stored login record. PasswordHash is a self-describing
// Argon2id PHC string; the plaintext password is never persisted.
type Credential struct {
	ID           string
	Identifier   string
	PasswordHash string
	CreatedAt    time.Time
}
