// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about request execution: every attempt, every retry, and
// every terminal failure, replacing ad-hoc console logging inside the client.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for request lifecycle events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the SDK core dependency-free from observability frameworks
//   - Allows different backends (a CLI logger, OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRequestHooks(&myRequestHooks{})
//	    // ... run application
//	}
//
// The executor calls hooks to emit events:
//
//	observability.Request().OnAttempt(ctx, method, path, attempt)
//	// ... perform the attempt ...
//	observability.Request().OnResponse(ctx, method, path, status, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// RequestHooks receives events from the hotel API request executor.
// Implementations must be safe for concurrent use: independent calls may
// execute in parallel, each with its own attempt counter.
type RequestHooks interface {
	// OnAttempt records the start of an attempt. attempt is 1-based and
	// counts retries, so the first retry arrives with attempt == 2.
	OnAttempt(ctx context.Context, method, path string, attempt int)

	// OnResponse records a completed HTTP exchange, whatever its status.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnRetry records that a retryable failure was observed and the executor
	// will wait delay before issuing attempt next.
	OnRetry(ctx context.Context, method, path string, next int, delay time.Duration)

	// OnTerminalError records the classified error surfaced to the caller
	// after the retry policy is exhausted or a non-retryable failure occurs.
	OnTerminalError(ctx context.Context, method, path string, err error)
}

// NoopRequestHooks is a no-op implementation of RequestHooks.
type NoopRequestHooks struct{}

func (NoopRequestHooks) OnAttempt(context.Context, string, string, int)                      {}
func (NoopRequestHooks) OnResponse(context.Context, string, string, int, time.Duration)      {}
func (NoopRequestHooks) OnRetry(context.Context, string, string, int, time.Duration)         {}
func (NoopRequestHooks) OnTerminalError(context.Context, string, string, error)              {}

var (
	requestHooks RequestHooks = NoopRequestHooks{}
	hooksMu      sync.RWMutex
)

// SetRequestHooks registers custom request hooks.
// This should be called once at application startup before any requests.
func SetRequestHooks(h RequestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		requestHooks = h
	}
}

// Request returns the registered request hooks.
func Request() RequestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return requestHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	requestHooks = NoopRequestHooks{}
}
