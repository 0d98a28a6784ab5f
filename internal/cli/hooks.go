package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tobiasmeyr/staybook/pkg/observability"
)

// logHooks forwards request lifecycle events to a charmbracelet logger.
// Attempt and response events log at debug level so they only appear with
// --verbose; retries and terminal errors log at warn level.
type logHooks struct {
	logger *log.Logger
}

var _ observability.RequestHooks = (*logHooks)(nil)

// newLogHooks creates request hooks backed by l.
func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnAttempt(_ context.Context, method, path string, attempt int) {
	h.logger.Debug("request attempt", "method", method, "path", path, "attempt", attempt)
}

func (h *logHooks) OnResponse(_ context.Context, method, path string, statusCode int, duration time.Duration) {
	h.logger.Debug("response received", "method", method, "path", path, "status", statusCode, "duration", duration.Round(time.Millisecond))
}

func (h *logHooks) OnRetry(_ context.Context, method, path string, next int, delay time.Duration) {
	h.logger.Warn("retrying request", "method", method, "path", path, "next_attempt", next, "delay", delay)
}

func (h *logHooks) OnTerminalError(_ context.Context, method, path string, err error) {
	h.logger.Warn("request failed", "method", method, "path", path, "error", err)
}
