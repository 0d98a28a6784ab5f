package errors

import (
	"strings"
	"time"
	"unicode"
)

// ValidateEndpointPath validates an API endpoint path before a request is
// built from it. It rejects paths that could escape the configured base URL
// or smuggle control characters into the request line.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No absolute URLs (the base URL owns scheme and host)
//   - No path traversal sequences (.., //)
//   - No control characters or whitespace
func ValidateEndpointPath(path string) error {
	if path == "" {
		return New(KindInvalidInput, "endpoint path cannot be empty")
	}

	if strings.Contains(path, "://") {
		return New(KindInvalidInput, "endpoint path must be relative to the base URL")
	}

	for _, r := range path {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(KindInvalidInput, "endpoint path contains invalid characters")
		}
	}

	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return New(KindInvalidInput, "endpoint path cannot be empty")
	}
	for _, pattern := range []string{"..", "//"} {
		if strings.Contains(path, pattern) {
			return New(KindInvalidInput, "endpoint path contains invalid sequence %q", pattern)
		}
	}

	return nil
}

// DateLayout is the wire format for dates accepted by the hotel API.
const DateLayout = "2006-01-02"

// ValidateDate validates a date string in the API's YYYY-MM-DD wire format.
// The field name is included in the error message for CLI display.
func ValidateDate(field, value string) error {
	if value == "" {
		return New(KindInvalidInput, "%s cannot be empty", field)
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return New(KindInvalidInput, "%s must be a date in YYYY-MM-DD form, got %q", field, value)
	}
	return nil
}

// ValidateStayDates validates a check-in/check-out pair: both must parse and
// check-out must fall strictly after check-in.
func ValidateStayDates(checkIn, checkOut string) error {
	if err := ValidateDate("check-in", checkIn); err != nil {
		return err
	}
	if err := ValidateDate("check-out", checkOut); err != nil {
		return err
	}

	in, _ := time.Parse(DateLayout, checkIn)
	out, _ := time.Parse(DateLayout, checkOut)
	if !out.After(in) {
		return New(KindInvalidInput, "check-out %s must be after check-in %s", checkOut, checkIn)
	}
	return nil
}
