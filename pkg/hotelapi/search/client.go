// Package search implements the availability-search and pre-book endpoints
// of the hotel API. It layers typed request/response schemas on the executor
// in the hotelapi package and contains no transport logic of its own.
package search

import (
	"context"
	"net/http"

	"github.com/tobiasmeyr/staybook/pkg/errors"
	"github.com/tobiasmeyr/staybook/pkg/hotelapi"
)

// Endpoint paths served by this client.
const (
	searchPath  = "/HotelSearch"
	preBookPath = "/PreBook"
)

// Client provides access to availability search and pre-booking verification.
type Client struct {
	exec *hotelapi.Executor
}

// NewClient creates a search client on top of an executor.
func NewClient(exec *hotelapi.Executor) *Client {
	return &Client{exec: exec}
}

// Params describes an availability search. Dates use the YYYY-MM-DD wire
// format.
type Params struct {
	CheckIn          string
	CheckOut         string
	CityCode         string
	GuestNationality string
	Currency         string
	Rooms            []Room
}

// Room describes the occupancy of one requested room.
type Room struct {
	Adults    int
	ChildAges []int
}

// Validate checks Params before any request is issued. Failures are
// INVALID_INPUT errors, distinct from the CLIENT_VALIDATION kind which is
// reserved for remote 4xx rejections.
func (p *Params) Validate() error {
	if err := errors.ValidateStayDates(p.CheckIn, p.CheckOut); err != nil {
		return err
	}
	if p.CityCode == "" {
		return errors.New(errors.KindInvalidInput, "city code is required")
	}
	if len(p.Rooms) == 0 {
		return errors.New(errors.KindInvalidInput, "at least one room is required")
	}
	for i, r := range p.Rooms {
		if r.Adults < 1 {
			return errors.New(errors.KindInvalidInput, "room %d must have at least one adult", i+1)
		}
		for _, age := range r.ChildAges {
			if age < 0 || age > 17 {
				return errors.New(errors.KindInvalidInput, "room %d has invalid child age %d", i+1, age)
			}
		}
	}
	return nil
}

// Search performs an availability search. A business status of 201 means no
// availability and yields an empty result, not an error; check
// [Result.Status] to distinguish the two success variants.
func (c *Client) Search(ctx context.Context, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var out Result
	if err := c.exec.Post(ctx, searchPath, p.payload(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PreBook verifies price and cancellation policy for a booking code returned
// by Search. The call sits directly in front of a booking mutation, so it is
// never retried: a transient failure surfaces immediately instead of being
// re-issued.
func (c *Client) PreBook(ctx context.Context, bookingCode string) (*PreBookResult, error) {
	if bookingCode == "" {
		return nil, errors.New(errors.KindInvalidInput, "booking code is required")
	}

	req := &hotelapi.Request{
		Method:  http.MethodPost,
		Path:    preBookPath,
		Body:    preBookRequest{BookingCode: bookingCode},
		NoRetry: true,
	}
	var out PreBookResult
	if err := c.exec.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *Params) payload() searchRequest {
	rooms := make([]paxRoom, len(p.Rooms))
	for i, r := range p.Rooms {
		rooms[i] = paxRoom{
			Adults:       r.Adults,
			Children:     len(r.ChildAges),
			ChildrenAges: r.ChildAges,
		}
	}
	return searchRequest{
		CheckIn:          p.CheckIn,
		CheckOut:         p.CheckOut,
		CityCode:         p.CityCode,
		GuestNationality: p.GuestNationality,
		Currency:         p.Currency,
		PaxRooms:         rooms,
	}
}

type searchRequest struct {
	CheckIn          string    `json:"CheckIn"`
	CheckOut         string    `json:"CheckOut"`
	CityCode         string    `json:"CityCode"`
	GuestNationality string    `json:"GuestNationality,omitempty"`
	Currency         string    `json:"Currency,omitempty"`
	PaxRooms         []paxRoom `json:"PaxRooms"`
}

type paxRoom struct {
	Adults       int   `json:"Adults"`
	Children     int   `json:"Children"`
	ChildrenAges []int `json:"ChildrenAges,omitempty"`
}

type preBookRequest struct {
	BookingCode string `json:"BookingCode"`
}

// Result is the decoded availability-search envelope.
type Result struct {
	hotelapi.Response
	Hotels []HotelOffer `json:"HotelResult"`
}

// HotelOffer is one hotel with its bookable room rates.
type HotelOffer struct {
	HotelCode string `json:"HotelCode"`
	HotelName string `json:"HotelName"`
	Currency  string `json:"Currency"`
	Rates     []Rate `json:"Rooms"`
}

// Rate is a bookable room offer within a hotel.
type Rate struct {
	Name         string  `json:"Name"`
	BookingCode  string  `json:"BookingCode"`
	MealType     string  `json:"MealType"`
	TotalFare    float64 `json:"TotalFare"`
	TotalTax     float64 `json:"TotalTax"`
	IsRefundable bool    `json:"IsRefundable"`
}

// PreBookResult is the decoded pre-book verification envelope.
type PreBookResult struct {
	hotelapi.Response
	BookingCode    string         `json:"BookingCode"`
	Currency       string         `json:"Currency"`
	TotalFare      float64        `json:"TotalFare"`
	TotalTax       float64        `json:"TotalTax"`
	IsRefundable   bool           `json:"IsRefundable"`
	RateConditions []string       `json:"RateConditions"`
	CancelPolicies []CancelPolicy `json:"CancelPolicies"`
}

// CancelPolicy is one step of a rate's cancellation charge schedule.
type CancelPolicy struct {
	FromDate           string  `json:"FromDate"`
	ChargeType         string  `json:"ChargeType"`
	CancellationCharge float64 `json:"CancellationCharge"`
}
