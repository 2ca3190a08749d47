package usecase

import (
	"context"
	"crypto/subtle"

	"mango-alerts-srv/internal/announcement"
	"mango-alerts-srv/internal/announcement/repository"
	"mango-alerts-srv/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// checkSecret compares in constant time so the password is not
// recoverable through timing.
func (uc *usecase) checkSecret(secret string) error {
	if subtle.ConstantTimeCompare([]byte(secret), []byte(uc.secret)) != 1 {
		return announcement.ErrInvalidSecret
	}
	return nil
}

func (uc *usecase) Create(ctx context.Context, secret string, input announcement.CreateInput) (model.Announcement, error) {
	if err := uc.checkSecret(secret); err != nil {
		return model.Announcement{}, err
	}
	if input.Content == "" {
		return model.Announcement{}, announcement.ErrMissingContent
	}

	a := model.Announcement{
		Content:    input.Content,
		Timestamp:  uc.clock(),
		ExpiryDate: input.ExpiryDate,
	}

	created, err := uc.repo.Create(ctx, a)
	if err != nil {
		uc.l.Errorf(ctx, "internal.announcement.usecase.Create: %v", err)
		return model.Announcement{}, err
	}
	return created, nil
}

func (uc *usecase) Delete(ctx context.Context, secret, id string) error {
	if err := uc.checkSecret(secret); err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return announcement.ErrInvalidID
	}

	if err := uc.repo.Delete(ctx, oid); err != nil {
		// Idempotent, same as alert deletion.
		if err == repository.ErrNotFound {
			return nil
		}
		uc.l.Errorf(ctx, "internal.announcement.usecase.Delete: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) List(ctx context.Context) ([]model.Announcement, error) {
	anns, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.announcement.usecase.List: %v", err)
		return nil, err
	}
	return anns, nil
}

func (uc *usecase) SetSeen(ctx context.Context, id string, seen bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return announcement.ErrInvalidID
	}

	if err := uc.repo.SetSeen(ctx, oid, seen); err != nil {
		if err == repository.ErrNotFound {
			return announcement.ErrInvalidID
		}
		uc.l.Errorf(ctx, "internal.announcement.usecase.SetSeen: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) Clear(ctx context.Context, ids []string) error {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return announcement.ErrInvalidID
		}
		oids = append(oids, oid)
	}

	if err := uc.repo.SetCleared(ctx, oids); err != nil {
		uc.l.Errorf(ctx, "internal.announcement.usecase.Clear: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) SweepExpired(ctx context.Context) (int64, error) {
	removed, err := uc.repo.DeleteExpired(ctx, uc.clock())
	if err != nil {
		uc.l.Errorf(ctx, "internal.announcement.usecase.SweepExpired: %v", err)
		return 0, err
	}
	return removed, nil
}
