package watcher

import (
	"time"

	"mango-alerts-srv/internal/alert"
	"mango-alerts-srv/internal/announcement"
	pkgLog "mango-alerts-srv/pkg/log"

	"github.com/benbjohnson/clock"
)

const (
	defaultInterval    = time.Minute
	defaultWorkerLimit = 8
)

// Watcher is the background poll loop: every interval it sweeps expired
// announcements and evaluates all open alerts.
type Watcher struct {
	l         pkgLog.Logger
	alertUC   alert.UseCase
	annUC     announcement.UseCase
	clock     clock.Clock
	interval  time.Duration
	workers   int
	evalLimit time.Duration
}

// Config carries the watcher dependencies and tuning.
type Config struct {
	AlertUC        alert.UseCase
	AnnouncementUC announcement.UseCase

	Interval    time.Duration
	WorkerLimit int

	// EvaluateTimeout bounds one alert's chain call so a slow endpoint
	// cannot stall the cycle forever. Zero means no per-alert timeout.
	EvaluateTimeout time.Duration

	// Clock is swappable for tests; nil means the real clock.
	Clock clock.Clock
}

func New(l pkgLog.Logger, cfg Config) *Watcher {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	workers := cfg.WorkerLimit
	if workers <= 0 {
		workers = defaultWorkerLimit
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Watcher{
		l:         l,
		alertUC:   cfg.AlertUC,
		annUC:     cfg.AnnouncementUC,
		clock:     clk,
		interval:  interval,
		workers:   workers,
		evalLimit: cfg.EvaluateTimeout,
	}
}
