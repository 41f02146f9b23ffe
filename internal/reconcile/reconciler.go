package reconcile

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper is the part of the meetings service the loop drives.
type Sweeper interface {
	SweepPending(ctx context.Context, grace time.Duration, limit int) (int, error)
	CompleteElapsed(ctx context.Context, limit int) (int, error)
}

// Reconciler retries calendar sync for PENDING meetings and completes
// CONFIRMED meetings whose end has passed.
type Reconciler struct {
	Sweeper  Sweeper
	Interval time.Duration
	Grace    time.Duration
	Batch    int
	Logger   *slog.Logger
}

type Result struct {
	Confirmed int
	Completed int
}

func (r *Reconciler) Run(ctx context.Context) error {
	interval := r.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	r.Once(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			r.Once(ctx)
		}
	}
}

// Once runs a single reconciliation pass.
func (r *Reconciler) Once(ctx context.Context) Result {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	batch := r.Batch
	if batch <= 0 {
		batch = 50
	}

	var res Result
	confirmed, err := r.Sweeper.SweepPending(ctx, r.Grace, batch)
	if err != nil {
		logger.Error("pending sweep failed", slog.Any("err", err))
	}
	res.Confirmed = confirmed

	completed, err := r.Sweeper.CompleteElapsed(ctx, batch)
	if err != nil {
		logger.Error("complete sweep failed", slog.Any("err", err))
	}
	res.Completed = completed

	if res.Confirmed > 0 || res.Completed > 0 {
		logger.Info("reconcile pass",
			slog.Int("confirmed", res.Confirmed),
			slog.Int("completed", res.Completed),
		)
	}
	return res
}
