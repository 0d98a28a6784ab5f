// Package hotelapi implements the request executor at the core of the
// staybook SDK: a typed client for a hotel-booking REST API.
//
// # Overview
//
// [Executor] owns an HTTP transport configured with a base URL, basic-auth
// credentials, and a per-attempt timeout. Its one operation is executing a
// logical API call: issue the HTTP request, classify the outcome, and retry
// transient failures with linear backoff before returning a decoded response
// or a classified error.
//
// Endpoint clients in the search and static subpackages layer typed
// request/response schemas on top of the executor; they contain no transport
// logic of their own.
//
// # Error classification
//
// Transport failures map onto the kinds in the errors package:
//
//   - connection, DNS, and timeout failures → NETWORK (retryable)
//   - HTTP 5xx → SERVER (retryable)
//   - HTTP 401 → AUTH (terminal, never retried)
//   - other HTTP 4xx → CLIENT_VALIDATION (terminal, never retried)
//   - undecodable response body → DECODE (terminal)
//
// Business status codes in the response body (200 success, 201 no results,
// 401, 500) are a separate layer: the executor passes them through untouched
// and callers branch on [Status] instead of errors.
//
// # Usage
//
//	exec, err := hotelapi.New(hotelapi.Config{
//	    BaseURL:     "https://api.example.com/v2",
//	    Credentials: hotelapi.Credentials{Username: "u", Password: "p"},
//	})
//	if err != nil {
//	    return err
//	}
//
//	var out struct {
//	    hotelapi.Response
//	    CountryList []Country
//	}
//	err = exec.Get(ctx, "/CountryList", nil, &out)
//
// # Observability
//
// The executor performs no terminal I/O. Every attempt, retry, and terminal
// failure is published through the observability package hooks, which a CLI
// or telemetry layer subscribes to at startup.
package hotelapi
