package notifier

import (
	"context"

	"mango-alerts-srv/internal/model"
	"mango-alerts-srv/pkg/mailer"
)

type mailProvider struct {
	mailer  mailer.Mailer
	subject string
}

var _ Provider = &mailProvider{}

// NewMailProvider sends alerts through the transactional mail relay.
func NewMailProvider(m mailer.Mailer, subject string) Provider {
	return &mailProvider{
		mailer:  m,
		subject: subject,
	}
}

func (p *mailProvider) Send(ctx context.Context, a model.Alert, message string, _ float64) error {
	return p.mailer.Send(ctx, a.Email, p.subject, message)
}
