package usecase

import (
	"context"
	"net/mail"
	"strings"

	"mango-alerts-srv/internal/alert"
	"mango-alerts-srv/internal/model"
)

// validateEmail accepts a bare RFC 5322 address with a dotted domain.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return alert.ErrInvalidEmail
	}
	at := strings.LastIndex(email, "@")
	if at < 0 || !strings.Contains(email[at+1:], ".") {
		return alert.ErrInvalidEmail
	}
	return nil
}

// validateContact checks the provider-specific contact info and returns
// the normalized contact value.
func (uc *usecase) validateContact(ctx context.Context, input alert.CreateInput) (alert.CreateInput, error) {
	switch input.AlertProvider {
	case model.ProviderMail:
		if err := validateEmail(input.Email); err != nil {
			return input, err
		}
		input.PhoneNumber, input.NotifiAlertID = "", ""

	case model.ProviderSMS:
		if uc.phones == nil {
			return input, alert.ErrInvalidProvider
		}
		normalized, err := uc.phones.LookupNumber(ctx, input.PhoneNumber)
		if err != nil {
			return input, alert.ErrInvalidPhone
		}
		input.PhoneNumber = normalized
		input.Email, input.NotifiAlertID = "", ""

	case model.ProviderPush:
		if input.NotifiAlertID == "" {
			return input, alert.ErrMissingContact
		}
		input.Email, input.PhoneNumber = "", ""

	default:
		return input, alert.ErrInvalidProvider
	}
	return input, nil
}
