package notifier

import (
	"context"

	"mango-alerts-srv/internal/model"
)

// Provider sends one rendered alert message through a single backend.
//
//go:generate mockery --name Provider
type Provider interface {
	Send(ctx context.Context, a model.Alert, message string, currentHealth float64) error
}

// Dispatcher routes an alert to the provider its record selects.
//
//go:generate mockery --name Dispatcher
type Dispatcher interface {
	// Dispatch is fire-and-forget for the caller: a false return means
	// the alert must stay open so the next poll cycle retries it.
	// Provider failures are logged here and never propagate.
	Dispatch(ctx context.Context, a model.Alert, message string, currentHealth float64) bool
}
