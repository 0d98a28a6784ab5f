// Package errors provides classified error types for the staybook SDK.
//
// This package defines error kinds and types that enable:
//   - Consistent error handling across the SDK and CLI
//   - Machine-readable error kinds for programmatic handling
//   - Branching on retryability (network/server vs. auth/validation)
//   - Error wrapping with the original cause preserved for diagnostics
//
// # Error Kinds
//
// Kinds mirror the transport-level failure taxonomy of the hotel API
// executor:
//   - NETWORK: connectivity, DNS, or timeout failures (retryable)
//   - SERVER: remote 5xx responses (retryable)
//   - AUTH: HTTP 401 (terminal, surfaced immediately)
//   - CLIENT_VALIDATION: other 4xx responses (terminal)
//   - DECODE: malformed response body on an otherwise successful request
//
// Business-level status codes embedded in response bodies are NOT errors;
// they are carried through to callers unmodified.
//
// # Usage
//
//	err := errors.New(errors.KindAuth, "credentials rejected")
//	if errors.Is(err, errors.KindAuth) {
//	    // Prompt for new credentials
//	}
//
//	// Wrap a transport failure
//	err := errors.Wrap(errors.KindNetwork, origErr, "request to %s failed", path)
package errors

import (
	"errors"
	"fmt"
)

// Kind represents a machine-readable error classification.
type Kind string

// Error kinds for the transport-level failure taxonomy.
const (
	// Retryable failures
	KindNetwork Kind = "NETWORK"
	KindServer  Kind = "SERVER"

	// Terminal failures, never produced after a retry
	KindAuth             Kind = "AUTH"
	KindClientValidation Kind = "CLIENT_VALIDATION"
	KindDecode           Kind = "DECODE"

	// Local failures raised before any request is issued
	KindInvalidInput  Kind = "INVALID_INPUT"
	KindInvalidConfig Kind = "INVALID_CONFIG"
)

// Error is a classified error with a kind, an optional HTTP status, and an
// optional underlying cause.
type Error struct {
	Kind       Kind   // Machine-readable classification
	HTTPStatus int    // Transport status that produced the error, 0 if none
	Message    string // Human-readable message
	Cause      error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Retryable reports whether the error represents a transient failure that a
// bounded retry policy may resolve.
func (e *Error) Retryable() bool {
	return e.Kind == KindNetwork || e.Kind == KindServer
}

// New creates a new Error with the given kind and formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// WrapHTTP creates a new Error for a failed HTTP exchange, recording the
// transport status code alongside the classification.
func WrapHTTP(kind Kind, status int, format string, args ...any) *Error {
	return &Error{
		Kind:       kind,
		HTTPStatus: status,
		Message:    fmt.Sprintf(format, args...),
	}
}

// Is reports whether err carries the given kind.
// It unwraps the error chain looking for an *Error with a matching kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf extracts the kind from an error, if available.
// Returns empty string if the error is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the kind prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
