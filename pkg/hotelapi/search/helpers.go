package search

// Pure reshaping helpers over search results. None of these touch the
// network; they operate on an already-decoded Result.

// CheapestRate returns the lowest-fare rate of the offer.
func (o HotelOffer) CheapestRate() (Rate, bool) {
	if len(o.Rates) == 0 {
		return Rate{}, false
	}
	best := o.Rates[0]
	for _, r := range o.Rates[1:] {
		if r.TotalFare < best.TotalFare {
			best = r
		}
	}
	return best, true
}

// Cheapest returns the hotel and rate with the lowest fare across the whole
// result.
func (r *Result) Cheapest() (HotelOffer, Rate, bool) {
	var (
		bestOffer HotelOffer
		bestRate  Rate
		found     bool
	)
	for _, offer := range r.Hotels {
		rate, ok := offer.CheapestRate()
		if !ok {
			continue
		}
		if !found || rate.TotalFare < bestRate.TotalFare {
			bestOffer, bestRate, found = offer, rate, true
		}
	}
	return bestOffer, bestRate, found
}

// Refundable returns the offers narrowed to their refundable rates. Hotels
// without any refundable rate are dropped.
func (r *Result) Refundable() []HotelOffer {
	var out []HotelOffer
	for _, offer := range r.Hotels {
		var rates []Rate
		for _, rate := range offer.Rates {
			if rate.IsRefundable {
				rates = append(rates, rate)
			}
		}
		if len(rates) > 0 {
			narrowed := offer
			narrowed.Rates = rates
			out = append(out, narrowed)
		}
	}
	return out
}
