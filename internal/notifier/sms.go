package notifier

import (
	"context"

	"mango-alerts-srv/internal/model"
	"mango-alerts-srv/pkg/twilio"
)

type smsProvider struct {
	client twilio.Client
}

var _ Provider = &smsProvider{}

// NewSMSProvider sends alerts as SMS. The phone number was validated at
// enrollment, so no lookup happens at dispatch time.
func NewSMSProvider(client twilio.Client) Provider {
	return &smsProvider{client: client}
}

func (p *smsProvider) Send(ctx context.Context, a model.Alert, message string, _ float64) error {
	return p.client.SendSMS(ctx, a.PhoneNumber, message)
}
