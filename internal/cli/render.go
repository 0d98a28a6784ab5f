package cli

import (
	"fmt"

	"github.com/tobiasmeyr/staybook/pkg/hotelapi/search"
	"github.com/tobiasmeyr/staybook/pkg/hotelapi/static"
)

// Terminal rendering for API results. Styling only, no data reshaping.

// renderOffer prints one hotel with the given rates.
func renderOffer(offer search.HotelOffer, rates []search.Rate) {
	fmt.Println(StyleTitle.Render(offer.HotelName) + " " + StyleDim.Render("(" + offer.HotelCode + ")"))
	for _, rate := range rates {
		renderRate(rate, offer.Currency)
	}
}

// renderRate prints a single rate line under a hotel heading.
func renderRate(rate search.Rate, currency string) {
	refund := styleNonRefundable.Render("non-refundable")
	if rate.IsRefundable {
		refund = styleRefundable.Render("refundable")
	}
	meal := ""
	if rate.MealType != "" {
		meal = StyleDim.Render(" · " + rate.MealType)
	}
	fmt.Printf("  %s %s %s%s %s\n",
		StyleDim.Render(iconArrow),
		StyleValue.Render(rate.Name),
		StyleNumber.Render(fmt.Sprintf("%.2f %s", rate.TotalFare, currency)),
		meal,
		refund,
	)
	printDetail("booking code: %s", rate.BookingCode)
}

// renderPreBook prints a pre-book verification result.
func renderPreBook(res *search.PreBookResult) {
	printKeyValue("Booking code", res.BookingCode)
	printKeyValue("Total fare", fmt.Sprintf("%.2f %s", res.TotalFare, res.Currency))
	printKeyValue("Total tax", fmt.Sprintf("%.2f %s", res.TotalTax, res.Currency))
	if res.IsRefundable {
		printKeyValue("Refundable", StyleSuccess.Render("yes"))
	} else {
		printKeyValue("Refundable", "no")
	}
	if len(res.CancelPolicies) > 0 {
		printNewline()
		fmt.Println(StyleTitle.Render("Cancellation policy"))
		for _, p := range res.CancelPolicies {
			printDetail("from %s: %.2f (%s)", p.FromDate, p.CancellationCharge, p.ChargeType)
		}
	}
	for _, cond := range res.RateConditions {
		printDetail("%s", cond)
	}
}

// renderHotelDetails prints the static content record of one hotel.
func renderHotelDetails(h *static.HotelDetails) {
	fmt.Println(StyleTitle.Render(h.HotelName) + " " + StyleDim.Render("(" + h.HotelCode + ")"))
	if h.StarRating > 0 {
		printKeyValue("Rating", fmt.Sprintf("%d stars", h.StarRating))
	}
	if h.Address != "" {
		printKeyValue("Address", h.Address)
	}
	if h.PhoneNumber != "" {
		printKeyValue("Phone", h.PhoneNumber)
	}
	printKeyValue("City code", h.CityCode)
	printKeyValue("Country", h.CountryCode)
	if h.Description != "" {
		printNewline()
		printDetail("%s", h.Description)
	}
	if len(h.Facilities) > 0 {
		printNewline()
		fmt.Println(StyleTitle.Render("Facilities"))
		for _, f := range h.Facilities {
			printDetail("%s", f)
		}
	}
}
