package flight

func ptrEndpoint(airport, scheduled string) *RawEndpoint {
	return &RawEndpoint{Airport: airport, Scheduled: scheduled}
}

func seedFlight(airline, iata, dep, arr string, amount uint64) RawFlight {
	return RawFlight{
		Airline:      &RawAirline{Name: airline},
		Flight:       &RawFlightCode{IATA: iata},
		Departure:    ptrEndpoint("Mumbai (BOM)", dep),
		Arrival:      ptrEndpoint("Delhi (DEL)", arr),
		FlightStatus: "scheduled",
		Distance:     &Distance{Km: KnownKilometers(1150)},
		Price:        &Price{Amount: amount, Currency: defaultCurrency},
	}
}

// seedFlights backs both the catalog endpoints and the fallback dataset.
func seedFlights() []RawFlight {
	return []RawFlight{
		seedFlight("Air India", "AI101", "2024-01-15T10:30:00+00:00", "2024-01-15T12:45:00+00:00", 8500),
		seedFlight("IndiGo", "6E202", "2024-01-15T11:15:00+00:00", "2024-01-15T13:20:00+00:00", 7200),
		seedFlight("Vistara", "UK805", "2024-01-15T14:00:00+00:00", "2024-01-15T16:15:00+00:00", 9500),
		seedFlight("SpiceJet", "SG301", "2024-01-15T16:45:00+00:00", "2024-01-15T19:00:00+00:00", 6800),
		seedFlight("GoAir", "G8123", "2024-01-15T20:30:00+00:00", "2024-01-15T22:45:00+00:00", 7500),
	}
}

// FallbackFlights is the fixed dataset shown when the live source fails or
// returns nothing.
func FallbackFlights() []RawFlight {
	return seedFlights()[:3]
}
