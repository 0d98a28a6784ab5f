package mockapi

import "github.com/tobiasmeyr/staybook/pkg/hotelapi"

// Wire types mirror the SDK's endpoint schemas. The mock defines its own
// copies so the server compiles against the JSON contract, not the client
// structs.

type countryListResponse struct {
	hotelapi.Response
	Countries []codeName `json:"CountryList"`
}

type cityListResponse struct {
	hotelapi.Response
	Cities []codeName `json:"CityList"`
}

type hotelDetailsResponse struct {
	hotelapi.Response
	Details []hotelDetail `json:"HotelDetails"`
}

type searchResponse struct {
	hotelapi.Response
	Hotels []hotelOffer `json:"HotelResult"`
}

type preBookResponse struct {
	hotelapi.Response
	BookingCode    string         `json:"BookingCode"`
	Currency       string         `json:"Currency"`
	TotalFare      float64        `json:"TotalFare"`
	TotalTax       float64        `json:"TotalTax"`
	IsRefundable   bool           `json:"IsRefundable"`
	CancelPolicies []cancelPolicy `json:"CancelPolicies"`
}

type cancelPolicy struct {
	FromDate           string  `json:"FromDate"`
	ChargeType         string  `json:"ChargeType"`
	CancellationCharge float64 `json:"CancellationCharge"`
}

type codeName struct {
	Code string `json:"Code"`
	Name string `json:"Name"`
}

type hotelDetail struct {
	HotelCode   string   `json:"HotelCode"`
	HotelName   string   `json:"HotelName"`
	HotelRating int      `json:"HotelRating"`
	Address     string   `json:"Address"`
	CityCode    string   `json:"CityCode"`
	CountryCode string   `json:"CountryCode"`
	Facilities  []string `json:"HotelFacilities"`
}

type hotelOffer struct {
	HotelCode string     `json:"HotelCode"`
	HotelName string     `json:"HotelName"`
	Currency  string     `json:"Currency"`
	Rates     []roomRate `json:"Rooms"`
}

type roomRate struct {
	Name         string  `json:"Name"`
	BookingCode  string  `json:"BookingCode"`
	MealType     string  `json:"MealType"`
	TotalFare    float64 `json:"TotalFare"`
	TotalTax     float64 `json:"TotalTax"`
	IsRefundable bool    `json:"IsRefundable"`
}

type hotelRecord struct {
	detail hotelDetail
	offer  hotelOffer
}

var countries = []codeName{
	{Code: "AE", Name: "United Arab Emirates"},
	{Code: "DE", Name: "Germany"},
	{Code: "ES", Name: "Spain"},
}

var citiesByCountry = map[string][]codeName{
	"AE": {
		{Code: "115936", Name: "Dubai"},
		{Code: "100765", Name: "Abu Dhabi"},
	},
	"DE": {
		{Code: "119267", Name: "Berlin"},
	},
	"ES": {
		{Code: "113210", Name: "Barcelona"},
	},
}

var hotels = []hotelRecord{
	{
		detail: hotelDetail{
			HotelCode:   "1000001",
			HotelName:   "Harbor View",
			HotelRating: 4,
			Address:     "1 Marina Walk",
			CityCode:    "115936",
			CountryCode: "AE",
			Facilities:  []string{"Pool", "Wifi", "Gym"},
		},
		offer: hotelOffer{
			HotelCode: "1000001",
			HotelName: "Harbor View",
			Currency:  "USD",
			Rates: []roomRate{
				{Name: "Standard Double", BookingCode: "hv-std", MealType: "Room Only", TotalFare: 240.5, TotalTax: 28.1, IsRefundable: true},
				{Name: "Deluxe King", BookingCode: "hv-dlx", MealType: "Breakfast", TotalFare: 310, TotalTax: 36.4, IsRefundable: false},
			},
		},
	},
	{
		detail: hotelDetail{
			HotelCode:   "1000002",
			HotelName:   "City Inn",
			HotelRating: 3,
			Address:     "22 Old Town Road",
			CityCode:    "115936",
			CountryCode: "AE",
			Facilities:  []string{"Wifi"},
		},
		offer: hotelOffer{
			HotelCode: "1000002",
			HotelName: "City Inn",
			Currency:  "USD",
			Rates: []roomRate{
				{Name: "Economy Twin", BookingCode: "ci-eco", MealType: "Room Only", TotalFare: 120, TotalTax: 14.2, IsRefundable: false},
			},
		},
	},
	{
		detail: hotelDetail{
			HotelCode:   "1000003",
			HotelName:   "Spree Garden",
			HotelRating: 5,
			Address:     "8 Museumsinsel",
			CityCode:    "119267",
			CountryCode: "DE",
			Facilities:  []string{"Spa", "Wifi", "Restaurant"},
		},
		offer: hotelOffer{
			HotelCode: "1000003",
			HotelName: "Spree Garden",
			Currency:  "EUR",
			Rates: []roomRate{
				{Name: "Junior Suite", BookingCode: "sg-jrs", MealType: "Half Board", TotalFare: 410, TotalTax: 62.5, IsRefundable: true},
			},
		},
	},
}
