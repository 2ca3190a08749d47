package usecase

import (
	"context"

	"mango-alerts-srv/internal/alert"
	"mango-alerts-srv/internal/alert/repository"
	"mango-alerts-srv/internal/model"
	"mango-alerts-srv/pkg/mango"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (uc *usecase) Create(ctx context.Context, input alert.CreateInput) (model.Alert, error) {
	input, err := uc.validateContact(ctx, input)
	if err != nil {
		return model.Alert{}, err
	}

	if err := uc.chain.ValidateAccount(ctx, input.MangoAccountPk, input.MangoGroupPk); err != nil {
		if err == mango.ErrAccountNotFound {
			return model.Alert{}, alert.ErrInvalidAccount
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.Create.ValidateAccount: %v", err)
		return model.Alert{}, err
	}

	a := model.Alert{
		MangoAccountPk: input.MangoAccountPk,
		MangoGroupPk:   input.MangoGroupPk,
		Health:         input.Health,
		AlertProvider:  input.AlertProvider,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		NotifiAlertID:  input.NotifiAlertID,
		Open:           true,
		Timestamp:      uc.clock(),
	}

	created, err := uc.repo.Create(ctx, a)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Create: %v", err)
		return model.Alert{}, err
	}
	return created, nil
}

func (uc *usecase) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return alert.ErrInvalidID
	}

	if err := uc.repo.Delete(ctx, oid); err != nil {
		// Deletion is idempotent: the evaluator may have removed the
		// record between the user's list and their delete.
		if err == repository.ErrNotFound {
			return nil
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.Delete: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) List(ctx context.Context, accountPk string) ([]alert.Summary, error) {
	if accountPk == "" {
		return nil, alert.ErrMissingAccount
	}

	alerts, err := uc.repo.ListByAccount(ctx, accountPk)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.List: %v", err)
		return nil, err
	}

	res := make([]alert.Summary, len(alerts))
	for i, a := range alerts {
		res[i] = alert.Summary{
			ID:                 a.ID.Hex(),
			Health:             a.Health,
			AlertProvider:      a.AlertProvider,
			Open:               a.Open,
			Timestamp:          a.Timestamp,
			TriggeredTimestamp: a.TriggeredTimestamp,
		}
	}
	return res, nil
}

func (uc *usecase) OpenAlerts(ctx context.Context) ([]model.Alert, error) {
	alerts, err := uc.repo.ListOpen(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.OpenAlerts: %v", err)
		return nil, err
	}
	return alerts, nil
}
