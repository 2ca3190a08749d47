package mailer

import (
	"context"

	"mango-alerts-srv/pkg/log"

	"gopkg.in/gomail.v2"
)

// Config holds the SMTP relay settings. The Mailjet relay authenticates
// with the API key pair as username/password.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpMailer struct {
	l      log.Logger
	cfg    Config
	dialer *gomail.Dialer
}

var _ Mailer = &smtpMailer{}

// New creates an SMTP-backed Mailer.
func New(l log.Logger, cfg Config) Mailer {
	return &smtpMailer{
		l:      l,
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.l.Errorf(ctx, "pkg.mailer.Send: %v", err)
		return err
	}
	return nil
}
