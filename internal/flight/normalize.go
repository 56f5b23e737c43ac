package flight

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	defaultBasePrice = 5000
	defaultCurrency  = "INR"
	unknownAirline   = "Unknown Airline"
	unknownStatus    = "Unknown"
)

// timestamp layouts accepted for scheduled times, most specific first.
// Layouts without an offset are read as UTC.
var scheduleLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseScheduled parses a scheduled timestamp; ok is false for empty, "N/A"
// or otherwise unparseable input.
func ParseScheduled(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == NotAvailable {
		return time.Time{}, false
	}
	for _, layout := range scheduleLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// CalculateDuration renders arrival minus departure as "{h}h {m}m" using floor
// division, so an arrival before the departure gives a negative reading such
// as "-3h -15m". Missing or unparseable times give "N/A".
func CalculateDuration(departure, arrival string) string {
	dep, ok := ParseScheduled(departure)
	if !ok {
		return NotAvailable
	}
	arr, ok := ParseScheduled(arrival)
	if !ok {
		return NotAvailable
	}

	diffMs := arr.Sub(dep).Milliseconds()
	hours := floorDiv(diffMs, int64(time.Hour/time.Millisecond))
	minutes := floorDiv(diffMs%int64(time.Hour/time.Millisecond), int64(time.Minute/time.Millisecond))
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// OnTimeRate is a cosmetic percentage in [80, 100].
func OnTimeRate() int {
	return rand.IntN(21) + 80
}

// DefaultPrice prices a flight that arrived without one.
func DefaultPrice(class TravelClass) Price {
	return Price{
		Amount:   uint64(math.Floor(defaultBasePrice * ClassMultiplier(class))),
		Currency: defaultCurrency,
	}
}

type Normalizer struct {
	onTimeRate func() int
}

func NewNormalizer() *Normalizer {
	return &Normalizer{onTimeRate: OnTimeRate}
}

// Normalize fills every missing field of raw and derives duration and
// on-time rate. class only matters when raw carries no price.
func (n *Normalizer) Normalize(raw RawFlight, class TravelClass) FlightRecord {
	rec := FlightRecord{
		Airline:      Airline{Name: unknownAirline},
		Flight:       FlightCode{IATA: NotAvailable},
		Departure:    Endpoint{Airport: NotAvailable, Scheduled: NotAvailable},
		Arrival:      Endpoint{Airport: NotAvailable, Scheduled: NotAvailable},
		FlightStatus: unknownStatus,
		TravelClass:  raw.TravelClass,
	}

	if raw.Airline != nil {
		rec.Airline = Airline{Name: raw.Airline.Name}
	}
	if raw.Flight != nil {
		rec.Flight = FlightCode{IATA: raw.Flight.IATA}
	}
	if raw.Departure != nil {
		rec.Departure = Endpoint{Airport: raw.Departure.Airport, Scheduled: raw.Departure.Scheduled}
	}
	if raw.Arrival != nil {
		rec.Arrival = Endpoint{Airport: raw.Arrival.Airport, Scheduled: raw.Arrival.Scheduled}
	}
	if raw.FlightStatus != "" {
		rec.FlightStatus = raw.FlightStatus
	}
	if raw.Distance != nil {
		rec.Distance = *raw.Distance
	}
	if raw.Price != nil {
		rec.Price = *raw.Price
	} else {
		rec.Price = DefaultPrice(class)
	}

	rec.Duration = CalculateDuration(rec.Departure.Scheduled, rec.Arrival.Scheduled)
	rec.OnTimeRate = n.onTimeRate()
	return rec
}

func (n *Normalizer) NormalizeAll(raws []RawFlight, class TravelClass) []FlightRecord {
	out := make([]FlightRecord, 0, len(raws))
	for _, raw := range raws {
		out = append(out, n.Normalize(raw, class))
	}
	return out
}
