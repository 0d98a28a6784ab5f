package hotelapi

// Business status codes embedded in every response body. These are the
// remote service's own success/failure indicators and are independent of the
// HTTP transport status: the executor carries them through unmodified and
// never converts them into errors.
const (
	BusinessSuccess     = 200 // request succeeded with results
	BusinessNoResults   = 201 // request succeeded but matched nothing (e.g. no availability)
	BusinessAuthFailed  = 401 // credentials rejected at the business layer
	BusinessServerError = 500 // remote processing failure
)

// Status is the business-status envelope present in every API response.
type Status struct {
	Code        int    `json:"Code"`
	Description string `json:"Description"`
}

// OK reports whether the business status indicates success with results.
func (s Status) OK() bool { return s.Code == BusinessSuccess }

// Empty reports whether the business status indicates success with an empty
// result set. Callers should treat this as "no availability", not a failure.
func (s Status) Empty() bool { return s.Code == BusinessNoResults }

// Succeeded reports whether the business status is any success variant.
func (s Status) Succeeded() bool { return s.OK() || s.Empty() }

// Response is the common envelope embedded in every endpoint response type.
// Endpoint-specific fields sit alongside Status at the top level of the JSON
// body, so response structs embed Response rather than wrapping it.
type Response struct {
	Status Status `json:"Status"`
}

// BusinessStatus returns the envelope status for callers holding the
// embedded type through an interface.
func (r Response) BusinessStatus() Status { return r.Status }
