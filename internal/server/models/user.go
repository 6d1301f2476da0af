// Package models defines the server-side database entities.
package models

import "time"

// User is a registered account. PasswordHash holds a bcrypt hash; the
// plaintext password never reaches the model layer.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	GenderID     string
	IsVerified   bool
	VerifiedAt   *time.Time
	CreatedAt    time.Time
}
