package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends verification codes through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender constructs a Sender backed by Resend. from is the mail
// From header, e.g. "TaskKeeper <no-reply@example.com>".
func NewResendSender(apiKey string, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendSender) SendCode(ctx context.Context, to string, code string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: "Email Verification OTP",
		Text:    fmt.Sprintf("Your OTP code is: %s. It will expire in 5 minutes.", code),
		Html:    fmt.Sprintf("<p>Your OTP code is: <b>%s</b></p><p>It will expire in 5 minutes.</p>", code),
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("mail send error: %w", err)
	}
	return nil
}
