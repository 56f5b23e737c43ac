package flight

import "strings"

// LocationContains reports whether the airport label contains the location
// token the user typed, ignoring case and surrounding spaces. Labels embed
// the IATA code ("Mumbai (BOM)"), so both "bom" and "Mumbai" match.
func LocationContains(label, token string) bool {
	return strings.Contains(normalizeLocation(label), normalizeLocation(token))
}

func normalizeLocation(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func IsOutbound(f FlightRecord, c SearchCriteria) bool {
	return LocationContains(f.Departure.Airport, c.From) &&
		LocationContains(f.Arrival.Airport, c.To)
}

// IsReturn is always false for one-way searches.
func IsReturn(f FlightRecord, c SearchCriteria) bool {
	return c.IsRoundTrip() &&
		LocationContains(f.Departure.Airport, c.To) &&
		LocationContains(f.Arrival.Airport, c.From)
}

// SplitByDirection assigns flights to legs. One-way searches put every
// flight on the outbound leg; round trips drop flights that match neither leg.
func SplitByDirection(flights []FlightRecord, c SearchCriteria) (outbound, inbound []FlightRecord) {
	if !c.IsRoundTrip() {
		return append([]FlightRecord(nil), flights...), nil
	}

	for _, f := range flights {
		if IsOutbound(f, c) {
			outbound = append(outbound, f)
		}
		if IsReturn(f, c) {
			inbound = append(inbound, f)
		}
	}
	return outbound, inbound
}
