// Package static implements the reference-data endpoints of the hotel API:
// country and city lists and per-hotel detail lookups.
package static

import (
	"context"

	"github.com/tobiasmeyr/staybook/pkg/errors"
	"github.com/tobiasmeyr/staybook/pkg/hotelapi"
)

// Endpoint paths served by this client.
const (
	countryListPath  = "/CountryList"
	cityListPath     = "/CityList"
	hotelDetailsPath = "/HotelDetails"
)

// Client provides access to the reference-data endpoints.
type Client struct {
	exec *hotelapi.Executor
}

// NewClient creates a reference-data client on top of an executor.
func NewClient(exec *hotelapi.Executor) *Client {
	return &Client{exec: exec}
}

// Countries fetches the list of bookable countries.
func (c *Client) Countries(ctx context.Context) ([]Country, error) {
	var out countryListResponse
	if err := c.exec.Get(ctx, countryListPath, nil, &out); err != nil {
		return nil, err
	}
	return out.Countries, nil
}

// Cities fetches the bookable cities of one country.
func (c *Client) Cities(ctx context.Context, countryCode string) ([]City, error) {
	if countryCode == "" {
		return nil, errors.New(errors.KindInvalidInput, "country code is required")
	}

	var out cityListResponse
	query := map[string]string{"CountryCode": countryCode}
	if err := c.exec.Get(ctx, cityListPath, query, &out); err != nil {
		return nil, err
	}
	return out.Cities, nil
}

// HotelDetails fetches descriptive data for one hotel. A business status of
// 201 means the hotel code matched nothing; that is returned as a nil detail
// with the envelope status preserved on the zero result.
func (c *Client) HotelDetails(ctx context.Context, hotelCode string) (*HotelDetails, error) {
	if hotelCode == "" {
		return nil, errors.New(errors.KindInvalidInput, "hotel code is required")
	}

	var out hotelDetailsResponse
	query := map[string]string{"HotelCode": hotelCode}
	if err := c.exec.Get(ctx, hotelDetailsPath, query, &out); err != nil {
		return nil, err
	}
	if out.Status.Empty() || len(out.Details) == 0 {
		return nil, nil
	}
	detail := out.Details[0]
	return &detail, nil
}

// Country is one bookable country.
type Country struct {
	Code string `json:"Code"`
	Name string `json:"Name"`
}

// City is one bookable city within a country.
type City struct {
	Code string `json:"Code"`
	Name string `json:"Name"`
}

// HotelDetails is descriptive data for one hotel.
type HotelDetails struct {
	HotelCode   string   `json:"HotelCode"`
	HotelName   string   `json:"HotelName"`
	StarRating  int      `json:"HotelRating"`
	Address     string   `json:"Address"`
	CityCode    string   `json:"CityCode"`
	CountryCode string   `json:"CountryCode"`
	Description string   `json:"Description"`
	Facilities  []string `json:"HotelFacilities"`
	PhoneNumber string   `json:"PhoneNumber"`
}

type countryListResponse struct {
	hotelapi.Response
	Countries []Country `json:"CountryList"`
}

type cityListResponse struct {
	hotelapi.Response
	Cities []City `json:"CityList"`
}

type hotelDetailsResponse struct {
	hotelapi.Response
	Details []HotelDetails `json:"HotelDetails"`
}
