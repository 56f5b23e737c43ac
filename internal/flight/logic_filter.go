package flight

import (
	"slices"
)

// filterContext holds the resolved slot ranges so we don't re-resolve inside the loop
type filterContext struct {
	state    FilterState
	class    string
	depSlots []hourRange
	arrSlots []hourRange
}

func newFilterContext(q FilterQuery) *filterContext {
	fc := &filterContext{state: q.Filters, class: q.Class}
	fc.depSlots = resolveSlots(q.Filters.DepTime)
	fc.arrSlots = resolveSlots(q.Filters.ArrTime)
	return fc
}

// resolveSlots drops unknown tags; they can never match.
func resolveSlots(tags []string) []hourRange {
	ranges := make([]hourRange, 0, len(tags))
	for _, tag := range tags {
		if r, ok := timeSlotRanges[tag]; ok {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

// inScope reports whether filters apply to the given leg under the chosen
// direction scope. An empty scope means both.
func inScope(scope, leg Direction) bool {
	return scope == "" || scope == DirectionBoth || scope == leg
}

// ApplyFilters returns the flights of one leg that pass every active
// predicate. When the direction scope excludes leg the list comes back
// unfiltered. The input slice is never modified.
func ApplyFilters(flights []FlightRecord, q FilterQuery, leg Direction) []FlightRecord {
	if !inScope(q.Direction, leg) {
		return slices.Clone(flights)
	}

	fc := newFilterContext(q)
	filtered := make([]FlightRecord, 0, len(flights))
	for _, f := range flights {
		if fc.matches(f) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// matches returns true only if ALL active filters pass
func (fc *filterContext) matches(f FlightRecord) bool {
	if len(fc.state.Airlines) > 0 && !slices.Contains(fc.state.Airlines, f.Airline.Name) {
		return false
	}

	// No stop counts in the data: "nonstop" lets everything through, any
	// other selection on its own lets nothing through.
	if len(fc.state.Stops) > 0 && !slices.Contains(fc.state.Stops, StopNonstop) {
		return false
	}

	if fc.state.DepAirport != "" && !LocationContains(f.Departure.Airport, fc.state.DepAirport) {
		return false
	}

	if f.Price.Amount < MinPrice || f.Price.Amount > fc.state.Price {
		return false
	}

	if len(fc.state.DepTime) > 0 && !inAnySlot(f.Departure.Scheduled, fc.depSlots) {
		return false
	}

	if len(fc.state.ArrTime) > 0 && !inAnySlot(f.Arrival.Scheduled, fc.arrSlots) {
		return false
	}

	if fc.class != "" && fc.class != ClassFilterAll &&
		f.TravelClass != "" && string(f.TravelClass) != fc.class {
		return false
	}

	return true
}

// inAnySlot uses the hour of the timestamp in its own offset. Unparseable
// times fall in no slot.
func inAnySlot(scheduled string, slots []hourRange) bool {
	t, ok := ParseScheduled(scheduled)
	if !ok {
		return false
	}
	hour := t.Hour()
	for _, r := range slots {
		if hour >= r.start && hour < r.end {
			return true
		}
	}
	return false
}
