package notifi

import "context"

// Client submits health-threshold events to the push platform.
//
//go:generate mockery --name Client
type Client interface {
	// SendHealthEvent authenticates and submits one event. The event is
	// keyed with a fresh random key so the platform can deduplicate
	// retries.
	SendHealthEvent(ctx context.Context, input HealthEventInput) error
}
