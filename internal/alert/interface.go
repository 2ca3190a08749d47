package alert

import (
	"context"

	"mango-alerts-srv/internal/model"
)

// UseCase defines the alert operations.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.Alert, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, accountPk string) ([]Summary, error)

	// OpenAlerts returns every alert still eligible for evaluation.
	OpenAlerts(ctx context.Context) ([]model.Alert, error)

	// Evaluate re-derives account health for one open alert and
	// dispatches a notification on breach. The returned error is for
	// logging only; the alert stays open on any failure.
	Evaluate(ctx context.Context, a model.Alert) error
}
