package booking

import (
	"fmt"
	"strings"

	"tripar/internal/flight"
)

// Legs returns the flights of a payload: the single flight of a one-way trip,
// or the outbound and return legs of a round trip.
func Legs(p flight.BookingPayload) []flight.FlightRecord {
	var legs []flight.FlightRecord
	for _, f := range []*flight.FlightRecord{p.Flight, p.Outbound, p.Return} {
		if f != nil {
			legs = append(legs, *f)
		}
	}
	return legs
}

// BasePrice sums the listed price of every leg. Neither the promo discount nor
// the class multiplier applies at this step.
func BasePrice(p flight.BookingPayload) uint64 {
	var total uint64
	for _, f := range Legs(p) {
		total += f.Price.Amount
	}
	return total
}

// Summary prices a payload for its travellers with the fixed tax.
func Summary(p flight.BookingPayload) flight.BookingFare {
	return flight.BookingSummary(BasePrice(p), p.SearchParams.TravellerCount())
}

// Validate lists every missing field of the form as one *flight.ValidationError.
func Validate(req Request) error {
	var problems []string
	missing := func(field string) {
		problems = append(problems, field+" is required")
	}

	p := req.Booking
	switch {
	case p.SearchParams.IsRoundTrip() && (p.Outbound == nil || p.Return == nil):
		problems = append(problems, "outbound and return flights are required")
	case !p.SearchParams.IsRoundTrip() && p.Flight == nil:
		problems = append(problems, "flight is required")
	}

	travellers := p.SearchParams.TravellerCount()
	if uint64(len(req.Passengers)) != travellers {
		problems = append(problems, fmt.Sprintf("%d passenger(s) expected, got %d", travellers, len(req.Passengers)))
	}
	for i, pax := range req.Passengers {
		label := fmt.Sprintf("passenger %d", i+1)
		if blank(pax.FirstName) {
			missing(label + " first name")
		}
		if blank(pax.LastName) {
			missing(label + " last name")
		}
		if blank(pax.DateOfBirth) {
			missing(label + " date of birth")
		}
	}

	if blank(req.Contact.Email) {
		missing("contact email")
	} else if !strings.Contains(req.Contact.Email, "@") {
		problems = append(problems, "contact email is invalid")
	}
	if blank(req.Contact.Phone) {
		missing("contact phone")
	}

	if blank(req.Payment.CardNumber) {
		missing("card number")
	}
	if blank(req.Payment.Expiry) {
		missing("card expiry")
	}
	if blank(req.Payment.CVV) {
		missing("card cvv")
	}
	if blank(req.Payment.CardHolder) {
		missing("card holder")
	}

	if len(problems) > 0 {
		return &flight.ValidationError{Message: strings.Join(problems, "; ")}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
