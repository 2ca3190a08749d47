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
	Create(ctx context.Context, a model.Announcement) (model.Announcement, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context) ([]model.Announcement, error)

	SetSeen(ctx context.Context, id primitive.ObjectID, seen bool) error

	// SetCleared marks the given announcements cleared; an empty slice
	// means all of them.
	SetCleared(ctx context.Context, ids []primitive.ObjectID) error

	// DeleteExpired removes announcements whose expiry date is before
	// now and returns the removed count.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
