package usecase

import (
	"context"
	"strconv"
	"strings"

	"mango-alerts-srv/internal/alert"
	"mango-alerts-srv/internal/alert/repository"
	"mango-alerts-srv/internal/model"
)

const (
	messageTemplate = "Your health ratio is at or below @ratio@% \n"
	messageFooter   = "\nVisit https://trade.mango.markets/"
)

// renderMessage fills the fixed template with the alert threshold and
// an account-identifying string.
func renderMessage(threshold float64, accountLabel string) string {
	ratio := strconv.FormatFloat(threshold, 'f', -1, 64)
	msg := strings.Replace(messageTemplate, "@ratio@", ratio, 1)
	return msg + accountLabel + messageFooter
}

func (uc *usecase) Evaluate(ctx context.Context, a model.Alert) error {
	health, err := uc.chain.GetHealthRatio(ctx, a.MangoAccountPk, a.MangoGroupPk)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Evaluate.GetHealthRatio: alert %s: %v", a.ID.Hex(), err)
		return err
	}

	// Breach is inclusive of equality.
	if health.MaintHealthRatio > a.Health {
		return nil
	}

	label := health.AccountName
	if label == "" {
		label = a.MangoAccountPk
	}
	message := renderMessage(a.Health, label)

	if !uc.dispatcher.Dispatch(ctx, a, message, health.MaintHealthRatio) {
		// Dispatch failed; the alert stays open and the next cycle
		// retries.
		return nil
	}

	switch uc.policy {
	case alert.PolicyDelete:
		if err := uc.repo.Delete(ctx, a.ID); err != nil && err != repository.ErrNotFound {
			uc.l.Errorf(ctx, "internal.alert.usecase.Evaluate.Delete: alert %s: %v", a.ID.Hex(), err)
			return err
		}
	default:
		if err := uc.repo.Close(ctx, a.ID, uc.clock()); err != nil {
			uc.l.Errorf(ctx, "internal.alert.usecase.Evaluate.Close: alert %s: %v", a.ID.Hex(), err)
			return err
		}
	}

	uc.l.Infof(ctx, "internal.alert.usecase.Evaluate: alert %s triggered at health %.2f (threshold %.2f)",
		a.ID.Hex(), health.MaintHealthRatio, a.Health)
	return nil
}
