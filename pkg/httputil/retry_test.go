package httputil

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := RetryWithSleep(context.Background(), 3, time.Second, noSleep(t), func(attempt int) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryRetriesRetryableErrors(t *testing.T) {
	calls := 0
	err := RetryWithSleep(context.Background(), 3, time.Second, noSleep(t), func(attempt int) error {
		calls++
		if calls < 3 {
			return &RetryableError{Err: errors.New("transient")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryStopsOnTerminalError(t *testing.T) {
	terminal := errors.New("bad request")
	calls := 0
	err := RetryWithSleep(context.Background(), 5, time.Second, noSleep(t), func(attempt int) error {
		calls++
		return terminal
	})
	if !errors.Is(err, terminal) {
		t.Fatalf("expected terminal error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	transient := errors.New("still down")
	calls := 0
	err := RetryWithSleep(context.Background(), 4, time.Second, noSleep(t), func(attempt int) error {
		calls++
		return &RetryableError{Err: transient}
	})
	if !errors.Is(err, transient) {
		t.Fatalf("expected last error, got %v", err)
	}
	if calls != 4 {
		t.Errorf("expected 4 calls, got %d", calls)
	}
}

func TestRetryLinearBackoff(t *testing.T) {
	var delays []time.Duration
	sleep := func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}

	base := 250 * time.Millisecond
	_ = RetryWithSleep(context.Background(), 4, base, sleep, func(attempt int) error {
		return &RetryableError{Err: errors.New("transient")}
	})

	want := []time.Duration{base, 2 * base, 3 * base}
	if len(delays) != len(want) {
		t.Fatalf("expected %d sleeps, got %d", len(want), len(delays))
	}
	for i, d := range delays {
		if d != want[i] {
			t.Errorf("sleep %d: expected %s, got %s", i+1, want[i], d)
		}
	}
}

func TestRetryAttemptNumbers(t *testing.T) {
	var seen []int
	_ = RetryWithSleep(context.Background(), 3, time.Second, noSleep(t), func(attempt int) error {
		seen = append(seen, attempt)
		return &RetryableError{Err: errors.New("transient")}
	})

	want := []int{1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("expected %d attempts, got %d", len(want), len(seen))
	}
	for i, n := range seen {
		if n != want[i] {
			t.Errorf("attempt %d: expected number %d, got %d", i, want[i], n)
		}
	}
}

func TestRetryCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Retry(ctx, 3, time.Minute, func(attempt int) error {
		calls++
		return &RetryableError{Err: errors.New("transient")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call before cancellation, got %d", calls)
	}
}

func TestRetryZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	err := RetryWithSleep(context.Background(), 0, time.Second, noSleep(t), func(attempt int) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

// noSleep fails the test if a real delay would have been requested with a
// zero duration, and otherwise returns immediately.
func noSleep(t *testing.T) SleepFunc {
	t.Helper()
	return func(ctx context.Context, d time.Duration) error {
		if d <= 0 {
			t.Fatalf("sleep requested with non-positive duration %s", d)
		}
		return nil
	}
}
