package flight

import (
	"fmt"
	"slices"
	"strings"
)

const (
	MinPrice uint64 = 2000
	MaxPrice uint64 = 20000
)

// Time slot tags, each a half-open hour range.
const (
	SlotBefore6 = "before6"
	Slot6To12   = "6to12"
	Slot12To18  = "12to18"
	SlotAfter18 = "after18"
)

const (
	StopNonstop = "nonstop"
	Stop1Stop   = "1stop"
	Stop2Plus   = "2plus"
)

// Popular tags are selectable but do not filter anything.
const (
	PopularNonstop    = "nonstop"
	PopularHideNearby = "hideNearby"
	PopularRefundable = "refundable"
)

type hourRange struct {
	start, end int
}

var timeSlotRanges = map[string]hourRange{
	SlotBefore6: {0, 6},
	Slot6To12:   {6, 12},
	Slot12To18:  {12, 18},
	SlotAfter18: {18, 24},
}

var knownStops = []string{StopNonstop, Stop1Stop, Stop2Plus}

// FilterState mirrors the filter panel. Sets are OR'ed within a category and
// categories are AND'ed together.
type FilterState struct {
	Popular    []string `json:"popular"`
	Airlines   []string `json:"airlines"`
	Stops      []string `json:"stops"`
	DepTime    []string `json:"depTime"`
	ArrTime    []string `json:"arrTime"`
	DepAirport string   `json:"depAirport"`
	Price      uint64   `json:"price"`
}

func DefaultFilterState() FilterState {
	return FilterState{
		Popular:  []string{},
		Airlines: []string{},
		Stops:    []string{},
		DepTime:  []string{},
		ArrTime:  []string{},
		Price:    MaxPrice,
	}
}

// Toggle adds value to a multi-select category, or removes it when present.
// category is one of popular, airlines, stops, depTime, arrTime.
func (s *FilterState) Toggle(category, value string) error {
	set, err := s.category(category)
	if err != nil {
		return err
	}
	if i := slices.Index(*set, value); i >= 0 {
		*set = slices.Delete(*set, i, i+1)
		return nil
	}
	*set = append(*set, value)
	return nil
}

func (s *FilterState) category(name string) (*[]string, error) {
	switch name {
	case "popular":
		return &s.Popular, nil
	case "airlines":
		return &s.Airlines, nil
	case "stops":
		return &s.Stops, nil
	case "depTime":
		return &s.DepTime, nil
	case "arrTime":
		return &s.ArrTime, nil
	}
	return nil, fmt.Errorf("unknown filter category %q", name)
}

// Validate rejects tags the engine does not know about and ceilings outside
// the slider range.
func (s FilterState) Validate() error {
	var problems []string
	for _, slot := range append(append([]string{}, s.DepTime...), s.ArrTime...) {
		if _, ok := timeSlotRanges[slot]; !ok {
			problems = append(problems, fmt.Sprintf("unknown time slot %q", slot))
		}
	}
	for _, stop := range s.Stops {
		if !slices.Contains(knownStops, stop) {
			problems = append(problems, fmt.Sprintf("unknown stops option %q", stop))
		}
	}
	if s.Price < MinPrice || s.Price > MaxPrice {
		problems = append(problems, fmt.Sprintf("price must be between %d and %d", MinPrice, MaxPrice))
	}
	if len(problems) > 0 {
		return &ValidationError{Message: strings.Join(problems, "; ")}
	}
	return nil
}
