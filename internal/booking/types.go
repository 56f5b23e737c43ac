package booking

import (
	"time"

	"tripar/internal/flight"
)

type Passenger struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender,omitempty"`
}

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Payment is checked for presence only; no card is ever charged.
type Payment struct {
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	CardHolder string `json:"cardHolder"`
}

// Request is the booking form submitted with the payload handed over by the
// results step.
type Request struct {
	Booking    flight.BookingPayload `json:"booking"`
	Passengers []Passenger           `json:"passengers"`
	Contact    Contact               `json:"contact"`
	Payment    Payment               `json:"payment"`
}

type Confirmation struct {
	BookingID   string                `json:"bookingId"`
	Booking     flight.BookingPayload `json:"booking"`
	Passengers  []Passenger           `json:"passengers"`
	Contact     Contact               `json:"contact"`
	Fare        flight.BookingFare    `json:"fare"`
	TotalAmount float64               `json:"totalAmount"`
	BookingDate time.Time             `json:"bookingDate"`
}
