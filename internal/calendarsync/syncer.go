package calendarsync

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type RetryPolicy struct {
	Attempts       int
	AttemptTimeout time.Duration
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts:       3,
		AttemptTimeout: 5 * time.Second,
		InitialBackoff: 200 * time.Millisecond,
		MaxBackoff:     2 * time.Second,
	}
}

// Syncer wraps a Provider with a bounded retry budget.
type Syncer struct {
	provider Provider
	policy   RetryPolicy
	logger   *slog.Logger
}

func NewSyncer(provider Provider, policy RetryPolicy, logger *slog.Logger) *Syncer {
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Syncer{provider: provider, policy: policy, logger: logger.With(slog.String("component", "calendarsync"))}
}

func (s *Syncer) CreateEvent(ctx context.Context, ev Event) (string, error) {
	var eventID string
	err := s.retry(ctx, "create", func(ctx context.Context) error {
		id, err := s.provider.CreateEvent(ctx, ev)
		if err != nil {
			return err
		}
		eventID = id
		return nil
	})
	if err != nil {
		return "", err
	}
	return eventID, nil
}

func (s *Syncer) DeleteEvent(ctx context.Context, eventID string) error {
	if eventID == "" {
		return nil
	}
	return s.retry(ctx, "delete", func(ctx context.Context) error {
		return s.provider.DeleteEvent(ctx, eventID)
	})
}

func (s *Syncer) retry(ctx context.Context, op string, call func(ctx context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.policy.InitialBackoff
	if s.policy.MaxBackoff > 0 {
		b.MaxInterval = s.policy.MaxBackoff
	}
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(s.policy.Attempts-1)), ctx)

	attempts := 0
	err := backoff.RetryNotify(func() error {
		attempts++
		attemptCtx := ctx
		if s.policy.AttemptTimeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, s.policy.AttemptTimeout)
			defer cancel()
		}
		err := call(attemptCtx)
		if errors.Is(err, ErrRejected) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		s.logger.Warn("calendar call failed, retrying",
			slog.String("op", op),
			slog.Int("attempt", attempts),
			slog.Duration("wait", wait),
			slog.Any("err", err),
		)
	})
	if err != nil {
		return &SyncError{Op: op, Attempts: attempts, Err: err}
	}
	return nil
}
