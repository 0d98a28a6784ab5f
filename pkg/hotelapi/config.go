package hotelapi

import (
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/tobiasmeyr/staybook/pkg/errors"
)

// Default settings applied by New when the corresponding Config field is zero.
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
)

// Environment variables recognized by FromEnv.
const (
	EnvBaseURL    = "STAYBOOK_BASE_URL"
	EnvUsername   = "STAYBOOK_USERNAME"
	EnvPassword   = "STAYBOOK_PASSWORD"
	EnvTimeoutMS  = "STAYBOOK_TIMEOUT_MS"
	EnvMaxRetries = "STAYBOOK_MAX_RETRIES"
)

// Credentials holds the basic-auth credentials sent with every request.
type Credentials struct {
	Username string
	Password string
}

// Empty reports whether no credentials were supplied.
func (c Credentials) Empty() bool { return c.Username == "" && c.Password == "" }

// Config holds the executor configuration. It is immutable after New: the
// executor copies it and never exposes the copy for mutation, so concurrent
// calls share only read-only state.
type Config struct {
	// BaseURL is the root of the remote API, e.g. "https://api.example.com/v2".
	BaseURL string

	// Credentials are injected as HTTP basic auth on every request. Empty
	// credentials are permitted for discovery flows but requests will very
	// likely resolve with an AUTH classified error.
	Credentials Credentials

	// Timeout bounds each individual attempt, not the whole retry sequence.
	Timeout time.Duration

	// MaxRetries is the number of re-issues after the first attempt, so a
	// call makes at most MaxRetries+1 attempts. Zero disables retries.
	MaxRetries int

	// RetryDelay is the base backoff: the wait before attempt N is
	// RetryDelay * (N-1).
	RetryDelay time.Duration

	// Limiter optionally throttles outgoing attempts across all calls
	// sharing this executor. Nil means unlimited.
	Limiter *rate.Limiter

	// UserAgent overrides the default staybook User-Agent header.
	UserAgent string

	retriesSet bool
}

// FromEnv builds a Config from process environment variables. Unset numeric
// variables fall back to the package defaults; malformed values are reported
// as INVALID_CONFIG errors rather than silently ignored.
func FromEnv() (Config, error) {
	cfg := Config{
		BaseURL: os.Getenv(EnvBaseURL),
		Credentials: Credentials{
			Username: os.Getenv(EnvUsername),
			Password: os.Getenv(EnvPassword),
		},
	}

	if v := os.Getenv(EnvTimeoutMS); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return Config{}, errors.New(errors.KindInvalidConfig, "%s must be a non-negative integer, got %q", EnvTimeoutMS, v)
		}
		cfg.Timeout = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv(EnvMaxRetries); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, errors.New(errors.KindInvalidConfig, "%s must be a non-negative integer, got %q", EnvMaxRetries, v)
		}
		cfg.SetMaxRetries(n)
	}
	return cfg, nil
}

// SetMaxRetries sets MaxRetries explicitly. A plain zero-valued Config gets
// the package default; calling SetMaxRetries(0) instead disables retries.
func (c *Config) SetMaxRetries(n int) {
	c.MaxRetries = n
	c.retriesSet = true
}

func (c *Config) applyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxRetries == 0 && !c.retriesSet {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = DefaultRetryDelay
	}
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return errors.New(errors.KindInvalidConfig, "base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New(errors.KindInvalidConfig, "base URL %q is not an absolute URL", c.BaseURL)
	}
	if c.MaxRetries < 0 {
		return errors.New(errors.KindInvalidConfig, "max retries cannot be negative")
	}
	if c.Timeout < 0 || c.RetryDelay < 0 {
		return errors.New(errors.KindInvalidConfig, "timeout and retry delay cannot be negative")
	}
	return nil
}
