package watcher

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Run blocks until ctx is cancelled. Cycles run back to back on the
// ticker: a cycle that overruns the interval simply delays the next
// tick instead of starting an overlapping batch.
func (w *Watcher) Run(ctx context.Context) {
	w.l.Infof(ctx, "internal.watcher.Run: started, interval %s, worker limit %d", w.interval, w.workers)

	ticker := w.clock.Ticker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.l.Info(ctx, "internal.watcher.Run: stopped")
			return
		case <-ticker.C:
			w.cycle(ctx)
		}
	}
}

// cycle runs one poll: announcement sweep, then bounded-concurrency
// evaluation of every open alert. Failures are contained per alert.
func (w *Watcher) cycle(ctx context.Context) {
	if removed, err := w.annUC.SweepExpired(ctx); err == nil && removed > 0 {
		w.l.Infof(ctx, "internal.watcher.cycle: swept %d expired updates", removed)
	}

	alerts, err := w.alertUC.OpenAlerts(ctx)
	if err != nil {
		w.l.Errorf(ctx, "internal.watcher.cycle: %v", err)
		return
	}
	if len(alerts) == 0 {
		return
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(w.workers)
	for _, a := range alerts {
		a := a
		g.Go(func() error {
			evalCtx := groupCtx
			if w.evalLimit > 0 {
				var cancel context.CancelFunc
				evalCtx, cancel = context.WithTimeout(groupCtx, w.evalLimit)
				defer cancel()
			}
			// Evaluate logs its own failures; an error here must not
			// cancel the sibling evaluations.
			_ = w.alertUC.Evaluate(evalCtx, a)
			return nil
		})
	}
	_ = g.Wait()

	w.l.Debugf(ctx, "internal.watcher.cycle: evaluated %d open alerts", len(alerts))
}
