package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStopHaltsAnimation(t *testing.T) {
	s := startSpinner(context.Background(), "working...")
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	select {
	case <-s.stopped:
	default:
		t.Error("Stop should not return before the animation goroutine exits")
	}
}

func TestSpinnerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := startSpinner(ctx, "working...")

	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after context cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := startSpinner(context.Background(), "working...")

	// Stop multiple times should not panic or block
	s.Stop()
	s.Stop()
	s.Stop()
}
