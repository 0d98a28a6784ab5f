// Package mockapi implements a local stand-in for the remote hotel API.
//
// The mock serves the same endpoints and response envelopes as the real
// service, backed by a small fixed dataset. It exists for CLI demos and
// smoke testing against a predictable backend: `staybook mock` starts it,
// and pointing STAYBOOK_BASE_URL at it exercises the full SDK path without
// real credentials or network access.
package mockapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tobiasmeyr/staybook/pkg/hotelapi"
)

// Server is an in-memory hotel API fake.
type Server struct {
	username string
	password string

	// failFirst injects this many 500 responses before the first success,
	// across all endpoints, to demonstrate the client's retry behavior.
	failFirst int
	failures  atomic.Int32
}

// New creates a mock API that accepts the given basic-auth credentials.
// Empty credentials disable the auth check entirely.
func New(username, password string) *Server {
	return &Server{username: username, password: password}
}

// FailFirst makes the next n requests return HTTP 500 before the server
// starts answering normally. Used by demos to show retries happening.
func (s *Server) FailFirst(n int) { s.failFirst = n }

// Handler returns the HTTP handler serving the mock API routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requireAuth)
	r.Use(s.injectFailures)

	r.Get("/CountryList", s.handleCountryList)
	r.Get("/CityList", s.handleCityList)
	r.Get("/HotelDetails", s.handleHotelDetails)
	r.Post("/HotelSearch", s.handleHotelSearch)
	r.Post("/PreBook", s.handlePreBook)
	return r
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.username == "" && s.password == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.username || pass != s.password {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if int(s.failures.Add(1)) <= s.failFirst {
			http.Error(w, "injected transient failure", http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleCountryList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, countryListResponse{
		Response:  success(),
		Countries: countries,
	})
}

func (s *Server) handleCityList(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("CountryCode")
	list, ok := citiesByCountry[code]
	if !ok {
		writeJSON(w, cityListResponse{Response: noResults()})
		return
	}
	writeJSON(w, cityListResponse{Response: success(), Cities: list})
}

func (s *Server) handleHotelDetails(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("HotelCode")
	for _, h := range hotels {
		if h.detail.HotelCode == code {
			writeJSON(w, hotelDetailsResponse{Response: success(), Details: []hotelDetail{h.detail}})
			return
		}
	}
	writeJSON(w, hotelDetailsResponse{Response: noResults()})
}

func (s *Server) handleHotelSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CityCode string `json:"CityCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var offers []hotelOffer
	for _, h := range hotels {
		if h.detail.CityCode == req.CityCode {
			offers = append(offers, h.offer)
		}
	}
	if len(offers) == 0 {
		writeJSON(w, searchResponse{Response: hotelapi.Response{
			Status: hotelapi.Status{Code: hotelapi.BusinessNoResults, Description: "No Availability"},
		}})
		return
	}
	writeJSON(w, searchResponse{Response: success(), Hotels: offers})
}

func (s *Server) handlePreBook(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookingCode string `json:"BookingCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	for _, h := range hotels {
		for _, rate := range h.offer.Rates {
			if rate.BookingCode == req.BookingCode {
				writeJSON(w, preBookResponse{
					Response:     success(),
					BookingCode:  rate.BookingCode,
					Currency:     h.offer.Currency,
					TotalFare:    rate.TotalFare,
					TotalTax:     rate.TotalTax,
					IsRefundable: rate.IsRefundable,
					CancelPolicies: []cancelPolicy{
						{FromDate: "2026-09-10", ChargeType: "Percentage", CancellationCharge: 100},
					},
				})
				return
			}
		}
	}
	writeJSON(w, preBookResponse{Response: hotelapi.Response{
		Status: hotelapi.Status{Code: hotelapi.BusinessNoResults, Description: "Booking Code Not Found"},
	}})
}

func success() hotelapi.Response {
	return hotelapi.Response{Status: hotelapi.Status{Code: hotelapi.BusinessSuccess, Description: "Successful"}}
}

func noResults() hotelapi.Response {
	return hotelapi.Response{Status: hotelapi.Status{Code: hotelapi.BusinessNoResults, Description: "No Results Found"}}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
