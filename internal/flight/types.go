package flight

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type ErrorCode string

const (
	ErrorCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrorCodeMissingCriteria ErrorCode = "MISSING_CRITERIA"
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeInternalFailure ErrorCode = "INTERNAL_FAILURE"
)

type TripType string

const (
	TripTypeOneWay    TripType = "ONE_WAY"
	TripTypeRoundTrip TripType = "ROUND_TRIP"
)

type TravelClass string

const (
	TravelClassEconomy  TravelClass = "ECONOMY"
	TravelClassBusiness TravelClass = "BUSINESS"
	TravelClassFirst    TravelClass = "FIRST"
)

type FareType string

const (
	FareTypeRegular       FareType = "REGULAR"
	FareTypeStudent       FareType = "STUDENT"
	FareTypeSeniorCitizen FareType = "SENIOR_CITIZEN"
	FareTypeDefence       FareType = "DEFENCE"
)

// NotAvailable is the placeholder for any field the source did not provide.
const NotAvailable = "N/A"

type SearchCriteria struct {
	From        string      `json:"from"`
	To          string      `json:"to"`
	Departure   string      `json:"departure"`
	ReturnDate  string      `json:"returnDate,omitempty"`
	TripType    TripType    `json:"tripType"`
	Travellers  uint32      `json:"travellers"`
	TravelClass TravelClass `json:"travelClass"`
	FareType    FareType    `json:"fareType"`
}

func (c SearchCriteria) IsRoundTrip() bool {
	return c.TripType == TripTypeRoundTrip
}

// TravellerCount never returns less than one.
func (c SearchCriteria) TravellerCount() uint64 {
	if c.Travellers == 0 {
		return 1
	}
	return uint64(c.Travellers)
}

// Validate reports ErrNoSearchCriteria when the locations or the departure
// date are missing.
func (c SearchCriteria) Validate() error {
	var missing []string
	if strings.TrimSpace(c.From) == "" {
		missing = append(missing, "from")
	}
	if strings.TrimSpace(c.To) == "" {
		missing = append(missing, "to")
	}
	if strings.TrimSpace(c.Departure) == "" {
		missing = append(missing, "departure")
	}
	if len(missing) > 0 {
		return &criteriaError{missing: missing}
	}
	return nil
}

type RawFlight struct {
	Airline      *RawAirline    `json:"airline,omitempty"`
	Flight       *RawFlightCode `json:"flight,omitempty"`
	Departure    *RawEndpoint   `json:"departure,omitempty"`
	Arrival      *RawEndpoint   `json:"arrival,omitempty"`
	FlightStatus string         `json:"flight_status,omitempty"`
	Distance     *Distance      `json:"distance,omitempty"`
	Price        *Price         `json:"price,omitempty"`
	TravelClass  TravelClass    `json:"travelClass,omitempty"`
}

type RawAirline struct {
	Name string `json:"name"`
}

type RawFlightCode struct {
	IATA string `json:"iata"`
}

type RawEndpoint struct {
	Airport   string `json:"airport"`
	Scheduled string `json:"scheduled"`
}

type FlightRecord struct {
	Airline      Airline     `json:"airline"`
	Flight       FlightCode  `json:"flight"`
	Departure    Endpoint    `json:"departure"`
	Arrival      Endpoint    `json:"arrival"`
	FlightStatus string      `json:"flight_status"`
	Distance     Distance    `json:"distance"`
	Price        Price       `json:"price"`
	TravelClass  TravelClass `json:"travelClass,omitempty"`
	Duration     string      `json:"duration"`
	OnTimeRate   int         `json:"onTimeRate"`
}

type Airline struct {
	Name string `json:"name"`
}

type FlightCode struct {
	IATA string `json:"iata"`
}

type Endpoint struct {
	Airport   string `json:"airport"`
	Scheduled string `json:"scheduled"`
}

type Price struct {
	Amount   uint64 `json:"amount"`
	Currency string `json:"currency"`
}

type Distance struct {
	Km Kilometers `json:"km"`
}

// Kilometers is either a known distance or "N/A" on the wire.
type Kilometers struct {
	Value float64
	Known bool
}

func KnownKilometers(v float64) Kilometers {
	return Kilometers{Value: v, Known: true}
}

func (k Kilometers) MarshalJSON() ([]byte, error) {
	if !k.Known {
		return json.Marshal(NotAvailable)
	}
	return []byte(strconv.FormatFloat(k.Value, 'f', -1, 64)), nil
}

func (k *Kilometers) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == '"' || bytes.Equal(data, []byte("null")) {
		*k = Kilometers{}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*k = Kilometers{}
		return nil
	}
	*k = KnownKilometers(v)
	return nil
}

// Direction is both a leg (outbound/return) and a filter scope (which also allows both).
type Direction string

const (
	DirectionBoth     Direction = "both"
	DirectionOutbound Direction = "outbound"
	DirectionReturn   Direction = "return"
)

type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByDuration  SortKey = "duration"
	SortByDeparture SortKey = "departure"
)

// ClassFilterAll disables the travel class filter.
const ClassFilterAll = "all"

type Selection struct {
	Outbound *FlightRecord `json:"outbound"`
	Return   *FlightRecord `json:"return"`
}

// BookingPayload is what the results step hands to the booking step. One-way
// trips carry Flight, round trips carry Outbound and Return.
type BookingPayload struct {
	Flight       *FlightRecord  `json:"flight,omitempty"`
	Outbound     *FlightRecord  `json:"outbound,omitempty"`
	Return       *FlightRecord  `json:"return,omitempty"`
	SearchParams SearchCriteria `json:"searchParams"`
	TotalFare    uint64         `json:"totalFare"`
}

type Metadata struct {
	TotalResults uint32 `json:"total_results"`
	Source       string `json:"source"`
	SearchTimeMs uint32 `json:"search_time_ms"`
	CacheKey     string `json:"cache_key"`
	CacheHit     bool   `json:"cache_hit"`
}

const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

type SearchResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Metadata       Metadata       `json:"metadata"`
	Flights        []FlightRecord `json:"flights"`
}

// FilterQuery is the user's filter panel plus the class and direction toggles.
type FilterQuery struct {
	Filters   FilterState `json:"filters"`
	Class     string      `json:"class"`
	Direction Direction   `json:"direction"`
}

func DefaultFilterQuery() FilterQuery {
	return FilterQuery{
		Filters:   DefaultFilterState(),
		Class:     ClassFilterAll,
		Direction: DirectionBoth,
	}
}

type ResultsRequest struct {
	SearchCriteria
	FilterQuery
	SortBy         SortKey `json:"sortBy"`
	SelectedOut    string  `json:"selectedOutbound,omitempty"`
	SelectedReturn string  `json:"selectedReturn,omitempty"`
	PromoCode      string  `json:"promoCode,omitempty"`
}

type FareView struct {
	Selection    Selection `json:"selection"`
	Promo        Promo     `json:"promo"`
	TotalFare    uint64    `json:"totalFare"`
	BookingReady bool      `json:"bookingReady"`
}

type ResultsResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Metadata       Metadata       `json:"metadata"`
	SortBy         SortKey        `json:"sort_by"`
	Outbound       []FlightRecord `json:"outbound"`
	Return         []FlightRecord `json:"return"`
	Fare           FareView       `json:"fare"`
}

type BookRequest struct {
	SearchCriteria
	Outbound  string `json:"outbound"`
	Return    string `json:"return"`
	PromoCode string `json:"promoCode,omitempty"`
}
