package announcement

import (
	"context"

	"mango-alerts-srv/internal/model"
)

// UseCase defines the announcement operations. Create and Delete are
// gated by the process-wide shared secret.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, secret string, input CreateInput) (model.Announcement, error)
	Delete(ctx context.Context, secret, id string) error
	List(ctx context.Context) ([]model.Announcement, error)

	SetSeen(ctx context.Context, id string, seen bool) error

	// Clear marks the given announcements as cleared; with no ids, all
	// of them.
	Clear(ctx context.Context, ids []string) error

	// SweepExpired deletes announcements whose expiry date has passed
	// and returns how many were removed.
	SweepExpired(ctx context.Context) (int64, error)
}
