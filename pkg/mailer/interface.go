package mailer

import "context"

// Mailer sends transactional mail.
//
//go:generate mockery --name Mailer
type Mailer interface {
	// Send delivers one message and returns only after the SMTP server
	// has accepted it.
	Send(ctx context.Context, to, subject, body string) error
}
