package flight

import (
	"fmt"
	"strings"
)

// CatalogQuery is the upstream query contract: GET /flights?from&to&departure[&return].
type CatalogQuery struct {
	From       string `form:"from"`
	To         string `form:"to"`
	Departure  string `form:"departure"`
	ReturnDate string `form:"return"`
}

func (q CatalogQuery) Validate() error {
	return SearchCriteria{From: q.From, To: q.To, Departure: q.Departure}.Validate()
}

type CatalogSearchQuery struct {
	CatalogQuery
	Passengers uint32      `form:"passengers"`
	Class      TravelClass `form:"class"`
	MaxPrice   uint64      `form:"maxPrice"`
	Airline    string      `form:"airline"`
}

type PricedFare struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	PerPerson float64 `json:"perPerson"`
}

// PricedFlight is a catalog flight priced for a party; its price and
// travelClass replace the embedded record's on the wire.
type PricedFlight struct {
	FlightRecord
	Price       PricedFare  `json:"price"`
	Passengers  uint32      `json:"passengers"`
	TravelClass TravelClass `json:"travelClass"`
}

// Catalog serves the seed flights relabelled for the requested route, the
// same shape the live flight API returns.
type Catalog struct {
	normalizer *Normalizer
}

func NewCatalog(n *Normalizer) *Catalog {
	if n == nil {
		n = NewNormalizer()
	}
	return &Catalog{normalizer: n}
}

func airportLabel(token string) string {
	token = strings.TrimSpace(token)
	return fmt.Sprintf("%s (%s)", token, strings.ToUpper(token))
}

// graftDate replaces the date part of an ISO timestamp, keeping time and offset.
func graftDate(date, scheduled string) string {
	if len(scheduled) < 10 {
		return date
	}
	return date + scheduled[10:]
}

// Flights lists the route's flights. With a return date every flight also
// gets a return leg: airports swapped, the return date grafted onto its
// times, and an "R" appended to its code.
func (c *Catalog) Flights(q CatalogQuery) ([]FlightRecord, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	from, to := airportLabel(q.From), airportLabel(q.To)
	seeds := seedFlights()

	raws := make([]RawFlight, 0, len(seeds)*2)
	for _, s := range seeds {
		out := s
		out.Departure = ptrEndpoint(from, s.Departure.Scheduled)
		out.Arrival = ptrEndpoint(to, s.Arrival.Scheduled)
		raws = append(raws, out)
	}

	if q.ReturnDate != "" {
		for _, s := range seeds {
			ret := s
			ret.Departure = ptrEndpoint(to, graftDate(q.ReturnDate, s.Departure.Scheduled))
			ret.Arrival = ptrEndpoint(from, graftDate(q.ReturnDate, s.Arrival.Scheduled))
			ret.Flight = &RawFlightCode{IATA: s.Flight.IATA + "R"}
			raws = append(raws, ret)
		}
	}

	return c.normalizer.NormalizeAll(raws, ""), nil
}

// Flight looks a seed flight up by its code.
func (c *Catalog) Flight(iata string) (FlightRecord, error) {
	for _, s := range seedFlights() {
		if s.Flight.IATA == iata {
			return c.normalizer.Normalize(s, ""), nil
		}
	}
	return FlightRecord{}, ErrFlightNotFound
}

// Search filters the route's flights by price ceiling and airline name
// (case-insensitive substring), then prices them for the party: the amount
// becomes base × class multiplier × passengers.
func (c *Catalog) Search(q CatalogSearchQuery) ([]PricedFlight, error) {
	flights, err := c.Flights(q.CatalogQuery)
	if err != nil {
		return nil, err
	}

	passengers := q.Passengers
	if passengers == 0 {
		passengers = 1
	}
	class := q.Class
	if class == "" {
		class = TravelClassEconomy
	}
	airline := strings.ToLower(strings.TrimSpace(q.Airline))

	priced := make([]PricedFlight, 0, len(flights))
	for _, f := range flights {
		if q.MaxPrice > 0 && f.Price.Amount > q.MaxPrice {
			continue
		}
		if airline != "" && !strings.Contains(strings.ToLower(f.Airline.Name), airline) {
			continue
		}

		base := f.Price.Amount
		if base == 0 {
			base = defaultBasePrice
		}
		perPerson := PerPersonFare(base, class)
		priced = append(priced, PricedFlight{
			FlightRecord: f,
			Price: PricedFare{
				Amount:    perPerson * float64(passengers),
				Currency:  f.Price.Currency,
				PerPerson: perPerson,
			},
			Passengers:  passengers,
			TravelClass: class,
		})
	}
	return priced, nil
}
