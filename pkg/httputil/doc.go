// Package httputil provides HTTP retry infrastructure for the hotel API client.
//
// # Retry
//
// [Retry] wraps an operation with automatic retry for transient failures:
//
//   - Network errors (DNS, connect, reset, timeout)
//   - 5xx server errors
//
// Only errors wrapped in [RetryableError] are retried; everything else is
// surfaced immediately. The backoff is linear in the attempt number: with a
// base delay of 1s the waits are 1s, 2s, 3s, ... between attempts. This
// matches the remote service's documented client guidance of backing off by
// `base * attempt` rather than doubling.
//
// Usage:
//
//	err := httputil.Retry(ctx, 4, time.Second, func(attempt int) error {
//	    return doRequest()
//	})
//
// # Testing
//
// [RetryWithSleep] accepts a [SleepFunc] so tests can record requested delays
// and return instantly instead of blocking on real timers.
package httputil
