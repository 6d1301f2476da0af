// Package mail delivers verification codes to users.
package mail

import "context"

// Sender dispatches a one-time verification code to an email address.
// Implementations must never log the code together with the recipient in a
// recoverable form beyond what delivery requires.
type Sender interface {
	SendCode(ctx context.Context, to string, code string) error
}
