package repository

import (
	"context"
	"errors"
	"time"

	"mango-alerts-srv/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no document matches.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, a model.Alert) (model.Alert, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// ListByAccount returns the alerts for one margin account with only
	// the projection fields populated; contact details are excluded at
	// the query level.
	ListByAccount(ctx context.Context, accountPk string) ([]model.Alert, error)

	// ListOpen returns every alert with open=true.
	ListOpen(ctx context.Context) ([]model.Alert, error)

	// Close flips open to false and stamps the trigger time.
	Close(ctx context.Context, id primitive.ObjectID, triggeredAt time.Time) error
}
