package resilience

import (
	"context"
	"time"
)

// RetryOnce runs fn and retries exactly once when isRetryable reports the
// error as transient. Remote reads in this service are bounded to a single
// retry; anything beyond that surfaces to the caller.
func RetryOnce(ctx context.Context, delay time.Duration, isRetryable func(error) bool, fn func(context.Context) error) error {
	err := fn(ctx)
	if err == nil {
		return nil
	}
	if isRetryable != nil && !isRetryable(err) {
		return err
	}
	if ctx.Err() != nil {
		return err
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return err
		case <-timer.C:
		}
	}

	return fn(ctx)
}
