package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (network timeouts, 5xx responses) with this type
// so that [Retry] knows to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// SleepFunc waits for the given duration or until the context is cancelled,
// in which case it returns the context error. Tests substitute a recording
// implementation to verify backoff without real delays.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default [SleepFunc] backed by a real timer.
func Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Retry executes fn up to attempts times with linear backoff: the wait before
// attempt N is delay * (N-1). fn receives the 1-based attempt number.
// It only retries errors wrapped with [RetryableError]; other errors are
// returned immediately. Returns the last error if all attempts fail, or the
// context error if cancelled during a backoff wait.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func(attempt int) error) error {
	return RetryWithSleep(ctx, attempts, delay, Sleep, fn)
}

// RetryWithSleep is [Retry] with an injectable sleep function.
func RetryWithSleep(ctx context.Context, attempts int, delay time.Duration, sleep SleepFunc, fn func(attempt int) error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := 1; i <= attempts; i++ {
		if err := fn(i); err == nil {
			return nil
		} else if lastErr = err; !isRetryable(err) {
			return err
		}

		if i < attempts {
			if err := sleep(ctx, delay*time.Duration(i)); err != nil {
				return err
			}
		}
	}
	return lastErr
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
