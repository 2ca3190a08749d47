package usecase

import (
	"time"

	"mango-alerts-srv/internal/alert"
	"mango-alerts-srv/internal/alert/repository"
	"mango-alerts-srv/internal/notifier"
	pkgLog "mango-alerts-srv/pkg/log"
	"mango-alerts-srv/pkg/mango"
	"mango-alerts-srv/pkg/twilio"
)

type usecase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	chain      mango.Client
	dispatcher notifier.Dispatcher
	phones     twilio.Client // nil when SMS enrollment is disabled
	policy     alert.TriggerPolicy
	clock      func() time.Time
}

// Config carries the usecase dependencies.
type Config struct {
	Repository repository.Repository
	Chain      mango.Client
	Dispatcher notifier.Dispatcher

	// Phones validates numbers at enrollment. Leave nil to reject SMS
	// alerts in this deployment.
	Phones twilio.Client

	Policy alert.TriggerPolicy
}

func New(l pkgLog.Logger, cfg Config) alert.UseCase {
	policy := cfg.Policy
	if policy == "" {
		policy = alert.PolicyClose
	}
	return &usecase{
		l:          l,
		repo:       cfg.Repository,
		chain:      cfg.Chain,
		dispatcher: cfg.Dispatcher,
		phones:     cfg.Phones,
		policy:     policy,
		clock:      time.Now,
	}
}
