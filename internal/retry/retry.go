package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Policy configures the executor.
type Policy struct {
	// Attempts is the total number of tries, including the first.
	// Values below 1 are treated as 1 (no retry).
	Attempts int

	// Delay is the pause between attempts. Zero means retry immediately.
	Delay time.Duration
}

// DefaultPolicy matches the APOD API defaults: three back-to-back attempts.
func DefaultPolicy() Policy {
	return Policy{Attempts: 3}
}

// ExhaustedError is returned when every attempt has failed. It wraps the
// error from the final attempt.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// Do invokes op until it succeeds or the policy's attempts are spent.
// The first success returns immediately. Intermediate failures are logged
// and retried; the final failure is wrapped in an *ExhaustedError.
// Cancelling the context stops further attempts.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if p.Attempts < 1 {
		p.Attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if attempt > 1 {
			if err := wait(ctx, p.Delay); err != nil {
				return zero, err
			}
		}

		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		if attempt < p.Attempts {
			slog.Warn("attempt failed, retrying",
				"attempt", attempt,
				"max_attempts", p.Attempts,
				"error", err,
			)
		}
	}

	return zero, &ExhaustedError{Attempts: p.Attempts, Err: lastErr}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
