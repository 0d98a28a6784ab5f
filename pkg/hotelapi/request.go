package hotelapi

import (
	"net/http"

	"github.com/tobiasmeyr/staybook/pkg/errors"
)

// Request describes one logical API call. A Request is created per call and
// carries no state between calls; the executor owns the attempt counter.
type Request struct {
	// Method is http.MethodGet or http.MethodPost.
	Method string

	// Path is the endpoint path relative to the configured base URL,
	// e.g. "/CountryList".
	Path string

	// Query holds the query parameters for GET requests.
	Query map[string]string

	// Body is JSON-encoded as the request body for POST requests.
	Body any

	// NoRetry disables the retry policy for this call. Endpoints adjacent to
	// booking mutations set this so a transient failure is never re-issued.
	NoRetry bool
}

func (r *Request) validate() error {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		return errors.New(errors.KindInvalidInput, "unsupported method %q", r.Method)
	}
	return errors.ValidateEndpointPath(r.Path)
}
