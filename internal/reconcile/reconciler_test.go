package reconcile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type fakeSweeper struct {
	sweepPendingFn    func(ctx context.Context, grace time.Duration, limit int) (int, error)
	completeElapsedFn func(ctx context.Context, limit int) (int, error)
}

func (f *fakeSweeper) SweepPending(ctx context.Context, grace time.Duration, limit int) (int, error) {
	if f.sweepPendingFn == nil {
		panic("SweepPending not configured")
	}
	return f.sweepPendingFn(ctx, grace, limit)
}

func (f *fakeSweeper) CompleteElapsed(ctx context.Context, limit int) (int, error) {
	if f.completeElapsedFn == nil {
		panic("CompleteElapsed not configured")
	}
	return f.completeElapsedFn(ctx, limit)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOnce_RunsBothSweepsEvenWhenOneFails(t *testing.T) {
	var gotGrace time.Duration
	var gotLimit int
	r := &Reconciler{
		Sweeper: &fakeSweeper{
			sweepPendingFn: func(ctx context.Context, grace time.Duration, limit int) (int, error) {
				gotGrace, gotLimit = grace, limit
				return 0, errors.New("db down")
			},
			completeElapsedFn: func(ctx context.Context, limit int) (int, error) {
				return 2, nil
			},
		},
		Grace:  30 * time.Second,
		Logger: quietLogger(),
	}

	res := r.Once(context.Background())
	if res.Completed != 2 || res.Confirmed != 0 {
		t.Fatalf("result = %+v", res)
	}
	if gotGrace != 30*time.Second || gotLimit != 50 {
		t.Fatalf("grace/limit = %v/%d", gotGrace, gotLimit)
	}
}

func TestRun_TicksUntilCancelled(t *testing.T) {
	var passes atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	r := &Reconciler{
		Sweeper: &fakeSweeper{
			sweepPendingFn: func(ctx context.Context, grace time.Duration, limit int) (int, error) {
				if passes.Add(1) >= 3 {
					cancel()
				}
				return 0, nil
			},
			completeElapsedFn: func(ctx context.Context, limit int) (int, error) {
				return 0, nil
			},
		},
		Interval: 5 * time.Millisecond,
		Logger:   quietLogger(),
	}

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run err = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not stop")
	}
	if passes.Load() < 3 {
		t.Fatalf("passes = %d, want >= 3", passes.Load())
	}
}
