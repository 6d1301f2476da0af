package models

import "time"

// Otp is a one-time verification code bound to a user. A code is usable
// only while IsUsed is false and ExpiresAt is in the future; it is marked
// used exactly once, either by a successful verification or by being
// superseded on resend.
type Otp struct {
	ID        string
	UserID    string
	Code      string
	IsUsed    bool
	CreatedAt time.Time
	ExpiresAt time.Time
}
