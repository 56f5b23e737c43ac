package booking

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"tripar/internal/flight"
	"tripar/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateID() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *MockGenerator) Reference(prefix string) string {
	args := m.Called(prefix)
	return args.String(0)
}

func record(iata string, amount uint64) *flight.FlightRecord {
	return &flight.FlightRecord{
		Airline: flight.Airline{Name: "Air India"},
		Flight:  flight.FlightCode{IATA: iata},
		Price:   flight.Price{Amount: amount, Currency: "INR"},
	}
}

func validRequest() Request {
	return Request{
		Booking: flight.BookingPayload{
			Flight: record("AI101", 5000),
			SearchParams: flight.SearchCriteria{
				From:        "Mumbai",
				To:          "Delhi",
				Departure:   "2024-01-15",
				TripType:    flight.TripTypeOneWay,
				Travellers:  2,
				TravelClass: flight.TravelClassBusiness,
			},
			TotalFare: 10000,
		},
		Passengers: []Passenger{
			{FirstName: "Asha", LastName: "Rao", DateOfBirth: "1990-04-02"},
			{FirstName: "Ravi", LastName: "Rao", DateOfBirth: "1988-11-20"},
		},
		Contact: Contact{Email: "asha@example.com", Phone: "+91 9800000000"},
		Payment: Payment{CardNumber: "4111111111111111", Expiry: "12/30", CVV: "123", CardHolder: "Asha Rao"},
	}
}

func TestSummary_TwoTravellersWithTax(t *testing.T) {
	fare := Summary(validRequest().Booking)

	assert.Equal(t, 10000.0, fare.BasePrice)
	assert.Equal(t, 1800.0, fare.Taxes)
	assert.Equal(t, 11800.0, fare.Total)
}

func TestBasePrice_SumsRoundTripLegs(t *testing.T) {
	p := flight.BookingPayload{
		Outbound:     record("AI101", 8500),
		Return:       record("AI101R", 7200),
		SearchParams: flight.SearchCriteria{TripType: flight.TripTypeRoundTrip},
	}

	assert.Equal(t, uint64(15700), BasePrice(p))
	assert.Len(t, Legs(p), 2)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(r *Request) {},
		},
		{
			name:    "missing first name",
			mutate:  func(r *Request) { r.Passengers[1].FirstName = " " },
			wantErr: "passenger 2 first name is required",
		},
		{
			name:    "passenger count mismatch",
			mutate:  func(r *Request) { r.Passengers = r.Passengers[:1] },
			wantErr: "2 passenger(s) expected, got 1",
		},
		{
			name:    "bad email",
			mutate:  func(r *Request) { r.Contact.Email = "asha.example.com" },
			wantErr: "contact email is invalid",
		},
		{
			name:    "missing cvv",
			mutate:  func(r *Request) { r.Payment.CVV = "" },
			wantErr: "card cvv is required",
		},
		{
			name:    "no flight",
			mutate:  func(r *Request) { r.Booking.Flight = nil },
			wantErr: "flight is required",
		},
		{
			name: "round trip without return leg",
			mutate: func(r *Request) {
				r.Booking.SearchParams.TripType = flight.TripTypeRoundTrip
				r.Booking.Outbound = r.Booking.Flight
				r.Booking.Flight = nil
			},
			wantErr: "outbound and return flights are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := Validate(req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var validation *flight.ValidationError
			require.True(t, errors.As(err, &validation))
			assert.Contains(t, validation.Message, tt.wantErr)
		})
	}
}

func TestValidate_ReportsEveryMissingField(t *testing.T) {
	req := validRequest()
	req.Contact = Contact{}
	req.Payment = Payment{}

	err := Validate(req)
	require.Error(t, err)
	for _, field := range []string{"contact email", "contact phone", "card number", "card expiry", "card cvv", "card holder"} {
		assert.Contains(t, err.Error(), field+" is required")
	}
}

func TestService_Confirm(t *testing.T) {
	ids := new(MockGenerator)
	ids.On("Reference", "BK").Return("BK1743512345678901234").Once()

	svc := NewService(ids, logger.NewWithWriter("test", io.Discard))
	fixed := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	conf, err := svc.Confirm(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "BK1743512345678901234", conf.BookingID)
	assert.Equal(t, 11800.0, conf.TotalAmount)
	assert.Equal(t, fixed, conf.BookingDate)
	assert.Equal(t, "AI101", conf.Booking.Flight.Flight.IATA)
	ids.AssertExpectations(t)
}

func TestService_ConfirmRejectsInvalidForm(t *testing.T) {
	ids := new(MockGenerator)
	svc := NewService(ids, logger.NewWithWriter("test", io.Discard))

	req := validRequest()
	req.Passengers = nil

	conf, err := svc.Confirm(context.Background(), req)
	assert.Nil(t, conf)

	var validation *flight.ValidationError
	assert.True(t, errors.As(err, &validation))
	ids.AssertNotCalled(t, "Reference", mock.Anything)
}
