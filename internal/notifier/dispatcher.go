package notifier

import (
	"context"

	"mango-alerts-srv/internal/model"
	"mango-alerts-srv/pkg/log"
)

type implDispatcher struct {
	l         log.Logger
	providers map[model.Provider]Provider
}

var _ Dispatcher = &implDispatcher{}

// New creates a Dispatcher over the given provider variants. Providers
// left out of the map (deployment-dependent ones) make their alerts
// undeliverable; those dispatches log and return false.
func New(l log.Logger, providers map[model.Provider]Provider) Dispatcher {
	return &implDispatcher{
		l:         l,
		providers: providers,
	}
}

func (d *implDispatcher) Dispatch(ctx context.Context, a model.Alert, message string, currentHealth float64) bool {
	p, ok := d.providers[a.AlertProvider]
	if !ok {
		d.l.Warnf(ctx, "internal.notifier.Dispatch: no provider configured for %q, alert %s stays open", a.AlertProvider, a.ID.Hex())
		return false
	}

	if err := p.Send(ctx, a, message, currentHealth); err != nil {
		d.l.Errorf(ctx, "internal.notifier.Dispatch: %s send failed for alert %s: %v", a.AlertProvider, a.ID.Hex(), err)
		return false
	}
	return true
}
