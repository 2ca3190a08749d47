package notifier

import (
	"context"

	"mango-alerts-srv/internal/model"
	"mango-alerts-srv/pkg/notifi"
)

type pushProvider struct {
	client notifi.Client
}

var _ Provider = &pushProvider{}

// NewPushProvider submits alerts as health-threshold events on the push
// platform.
func NewPushProvider(client notifi.Client) Provider {
	return &pushProvider{client: client}
}

func (p *pushProvider) Send(ctx context.Context, a model.Alert, message string, currentHealth float64) error {
	return p.client.SendHealthEvent(ctx, notifi.HealthEventInput{
		AlertID:       a.NotifiAlertID,
		AccountPk:     a.MangoAccountPk,
		Threshold:     a.Health,
		CurrentHealth: currentHealth,
		Message:       message,
	})
}
