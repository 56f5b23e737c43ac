package flight

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Comparator orders two flights the way cmp.Compare does.
type Comparator func(a, b FlightRecord) int

// Sorter maps each sort key to its comparator. Duration is kept separate so
// the numeric comparator can replace the text one.
type Sorter struct {
	ByDuration Comparator
}

func NewSorter(numericDuration bool) *Sorter {
	if numericDuration {
		return &Sorter{ByDuration: CompareDurationMinutes}
	}
	return &Sorter{ByDuration: CompareDurationText}
}

// Sort returns a stably sorted copy. Unknown keys keep the input order.
func (s *Sorter) Sort(flights []FlightRecord, key SortKey) []FlightRecord {
	sorted := slices.Clone(flights)
	if len(sorted) <= 1 {
		return sorted
	}

	var compare Comparator
	switch key {
	case SortByPrice:
		compare = ComparePrice
	case SortByDuration:
		compare = s.ByDuration
		if compare == nil {
			compare = CompareDurationText
		}
	case SortByDeparture:
		compare = CompareDeparture
	default:
		return sorted
	}

	// Using a stable sort to prevent cards jumping when values are equal
	slices.SortStableFunc(sorted, compare)
	return sorted
}

func ComparePrice(a, b FlightRecord) int {
	return cmp.Compare(a.Price.Amount, b.Price.Amount)
}

// CompareDurationText compares the rendered durations as plain strings, so
// "10h 5m" sorts before "2h 30m".
func CompareDurationText(a, b FlightRecord) int {
	return strings.Compare(durationOrZero(a.Duration), durationOrZero(b.Duration))
}

// CompareDurationMinutes compares durations by their length. "N/A" sorts last.
func CompareDurationMinutes(a, b FlightRecord) int {
	am, aok := durationMinutes(a.Duration)
	bm, bok := durationMinutes(b.Duration)
	switch {
	case aok && bok:
		return cmp.Compare(am, bm)
	case aok:
		return -1
	case bok:
		return 1
	}
	return 0
}

// CompareDeparture orders chronologically; unparseable times count as the Unix epoch.
func CompareDeparture(a, b FlightRecord) int {
	return cmp.Compare(departureUnixMilli(a), departureUnixMilli(b))
}

func departureUnixMilli(f FlightRecord) int64 {
	t, ok := ParseScheduled(f.Departure.Scheduled)
	if !ok {
		return time.Unix(0, 0).UnixMilli()
	}
	return t.UnixMilli()
}

func durationOrZero(d string) string {
	if d == "" {
		return "0h 0m"
	}
	return d
}

// durationMinutes parses "{h}h {m}m" back into minutes.
func durationMinutes(d string) (int64, bool) {
	hPart, mPart, ok := strings.Cut(strings.TrimSpace(d), " ")
	if !ok || !strings.HasSuffix(hPart, "h") || !strings.HasSuffix(mPart, "m") {
		return 0, false
	}
	h, err := strconv.ParseInt(strings.TrimSuffix(hPart, "h"), 10, 64)
	if err != nil {
		return 0, false
	}
	m, err := strconv.ParseInt(strings.TrimSuffix(mPart, "m"), 10, 64)
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
