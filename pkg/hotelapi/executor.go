package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/tobiasmeyr/staybook/pkg/buildinfo"
	"github.com/tobiasmeyr/staybook/pkg/errors"
	"github.com/tobiasmeyr/staybook/pkg/httputil"
	"github.com/tobiasmeyr/staybook/pkg/observability"
)

// HeaderRequestID carries a per-call correlation ID. All attempts of one
// logical call share the same ID.
const HeaderRequestID = "X-Request-ID"

// maxErrorBodyBytes caps how much of an error response body is carried into
// the classified error message.
const maxErrorBodyBytes = 512

// Executor performs one logical API call reliably, hiding transient
// network/server failures behind a bounded retry policy. It returns either
// the decoded response envelope or a classified *errors.Error.
//
// An Executor is safe for concurrent use: the configuration is immutable
// after New and each call owns its attempt counter and backoff timer.
type Executor struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter

	// sleep is replaced in tests to verify backoff without real delays.
	sleep httputil.SleepFunc
}

// New creates an Executor from cfg, applying package defaults for zero
// fields. It returns an INVALID_CONFIG error if the base URL is missing or
// malformed.
func New(cfg Config) (*Executor, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Executor{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: cfg.Limiter,
		sleep:   httputil.Sleep,
	}, nil
}

// Config returns a copy of the executor's configuration.
func (e *Executor) Config() Config { return e.cfg }

// Get performs a GET request with the given query parameters and decodes the
// response envelope into out.
func (e *Executor) Get(ctx context.Context, path string, query map[string]string, out any) error {
	return e.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

// Post performs a POST request with body JSON-encoded and decodes the
// response envelope into out.
func (e *Executor) Post(ctx context.Context, path string, body, out any) error {
	return e.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

// Do executes one logical API call described by req.
//
// Retryable failures (network errors, 5xx responses) are re-issued with a
// linear backoff of RetryDelay * attempt until MaxRetries is exhausted.
// Terminal failures (401 → AUTH, other 4xx → CLIENT_VALIDATION, malformed
// body → DECODE) are surfaced after a single attempt. On success the body is
// decoded into out with the business status untouched; pass nil to discard
// the body.
func (e *Executor) Do(ctx context.Context, req *Request, out any) error {
	if err := req.validate(); err != nil {
		return err
	}

	attempts := e.cfg.MaxRetries + 1
	if req.NoRetry {
		attempts = 1
	}
	requestID := uuid.NewString()

	err := httputil.RetryWithSleep(ctx, attempts, e.cfg.RetryDelay, e.sleep, func(attempt int) error {
		return e.attempt(ctx, req, requestID, attempt, attempts, out)
	})
	if err != nil {
		var r *httputil.RetryableError
		if stderrors.As(err, &r) {
			err = r.Err
		}
		observability.Request().OnTerminalError(ctx, req.Method, req.Path, err)
		return err
	}
	return nil
}

// attempt performs a single HTTP exchange. Retryable outcomes are wrapped in
// httputil.RetryableError; everything else is terminal.
func (e *Executor) attempt(ctx context.Context, req *Request, requestID string, attempt, attempts int, out any) error {
	hooks := observability.Request()
	hooks.OnAttempt(ctx, req.Method, req.Path, attempt)

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	httpReq, err := e.buildHTTPRequest(ctx, req, requestID)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := e.http.Do(httpReq)
	if err != nil {
		return e.deferRetry(ctx, req, classifyTransport(err), attempt, attempts)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, req.Path, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		cerr := errors.Wrap(errors.KindNetwork, err, "reading response from %s", req.Path)
		return e.deferRetry(ctx, req, cerr, attempt, attempts)
	}

	if cerr := classifyStatus(resp.StatusCode, body); cerr != nil {
		if cerr.Retryable() {
			return e.deferRetry(ctx, req, cerr, attempt, attempts)
		}
		return cerr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(errors.KindDecode, err, "malformed response from %s", req.Path)
	}
	return nil
}

// deferRetry emits the retry hook when another attempt will follow and wraps
// the classified error so the retry loop re-issues the request.
func (e *Executor) deferRetry(ctx context.Context, req *Request, cerr *errors.Error, attempt, attempts int) error {
	if attempt < attempts {
		delay := e.cfg.RetryDelay * time.Duration(attempt)
		observability.Request().OnRetry(ctx, req.Method, req.Path, attempt+1, delay)
	}
	return &httputil.RetryableError{Err: cerr}
}

func (e *Executor) buildHTTPRequest(ctx context.Context, req *Request, requestID string) (*http.Request, error) {
	target := strings.TrimRight(e.cfg.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")

	var body io.Reader
	if req.Method == http.MethodPost {
		payload := req.Body
		if payload == nil {
			payload = struct{}{}
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(errors.KindInvalidInput, err, "encoding request body for %s", req.Path)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, errors.Wrap(errors.KindInvalidInput, err, "building request for %s", req.Path)
	}

	if len(req.Query) > 0 {
		q := url.Values{}
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(HeaderRequestID, requestID)
	if e.cfg.UserAgent != "" {
		httpReq.Header.Set("User-Agent", e.cfg.UserAgent)
	} else {
		httpReq.Header.Set("User-Agent", buildinfo.UserAgent())
	}
	if !e.cfg.Credentials.Empty() {
		httpReq.SetBasicAuth(e.cfg.Credentials.Username, e.cfg.Credentials.Password)
	}
	return httpReq, nil
}

// classifyTransport maps connection-level failures (DNS, connect, reset,
// timeout) to the NETWORK kind. These are always retryable.
func classifyTransport(err error) *errors.Error {
	if stderrors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
		return errors.Wrap(errors.KindNetwork, err, "request timed out")
	}
	return errors.Wrap(errors.KindNetwork, err, "request failed")
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return stderrors.As(err, &t) && t.Timeout()
}

// classifyStatus maps a transport-level HTTP status to the error taxonomy.
// Returns nil for 2xx. Business status codes live in the body and are never
// inspected here.
func classifyStatus(status int, body []byte) *errors.Error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return errors.WrapHTTP(errors.KindAuth, status, "authentication rejected: %s", snippet(body))
	case status >= 500:
		return errors.WrapHTTP(errors.KindServer, status, "server error %d: %s", status, snippet(body))
	case status >= 400:
		return errors.WrapHTTP(errors.KindClientValidation, status, "request rejected with %d: %s", status, snippet(body))
	default:
		// 1xx/3xx never carry the envelope, so treat them like a malformed
		// response rather than something worth re-issuing.
		return errors.WrapHTTP(errors.KindDecode, status, "unexpected status %d", status)
	}
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBodyBytes {
		s = s[:maxErrorBodyBytes] + "..."
	}
	if s == "" {
		return "(empty body)"
	}
	return s
}
