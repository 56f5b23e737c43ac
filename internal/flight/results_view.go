package flight

// Handoff receives the payload of a successful "book now".
type Handoff interface {
	Handoff(payload BookingPayload)
}

// ResultsView is the single-owner state behind one results page: the current
// search, its flights, the filter panel, the sort key, the chosen legs and the
// promo code. It is not safe for concurrent use; the owning view mutates it
// in response to user input and reads lists back through the pure engines.
type ResultsView struct {
	sorter *Sorter

	criteria   *SearchCriteria
	err        error
	generation uint64
	loading    bool
	flights    []FlightRecord

	query     FilterQuery
	sortBy    SortKey
	selection Selection
	promo     Promo
}

// NewResultsView starts in the no-criteria error state until BeginSearch is called.
func NewResultsView(sorter *Sorter) *ResultsView {
	if sorter == nil {
		sorter = NewSorter(false)
	}
	return &ResultsView{
		sorter: sorter,
		err:    ErrNoSearchCriteria,
		query:  DefaultFilterQuery(),
		sortBy: SortByPrice,
	}
}

// BeginSearch records a new search submission and returns its generation.
// Selection, promo and filters are reset and the view is loading until
// ApplyResults is called with that generation.
func (v *ResultsView) BeginSearch(criteria SearchCriteria) (uint64, error) {
	v.generation++
	v.flights = nil
	v.selection = Selection{}
	v.promo = Promo{}
	v.query = DefaultFilterQuery()

	if err := criteria.Validate(); err != nil {
		v.criteria = nil
		v.err = err
		v.loading = false
		return v.generation, err
	}

	v.criteria = &criteria
	v.err = nil
	v.loading = true
	return v.generation, nil
}

// ApplyResults installs flights for generation gen. Responses for any older
// generation are discarded and false is returned.
func (v *ResultsView) ApplyResults(gen uint64, flights []FlightRecord) bool {
	if gen != v.generation || v.criteria == nil {
		return false
	}
	v.flights = append([]FlightRecord(nil), flights...)
	v.loading = false
	return true
}

func (v *ResultsView) Err() error         { return v.err }
func (v *ResultsView) Loading() bool      { return v.loading }
func (v *ResultsView) Generation() uint64 { return v.generation }

func (v *ResultsView) Criteria() (SearchCriteria, bool) {
	if v.criteria == nil {
		return SearchCriteria{}, false
	}
	return *v.criteria, true
}

func (v *ResultsView) Query() FilterQuery { return v.query }

func (v *ResultsView) SetQuery(q FilterQuery) {
	if q.Direction == "" {
		q.Direction = DirectionBoth
	}
	if q.Class == "" {
		q.Class = ClassFilterAll
	}
	v.query = q
}

// ClearFilters resets the filter panel; the class and direction toggles stay.
func (v *ResultsView) ClearFilters() {
	v.query.Filters = DefaultFilterState()
}

func (v *ResultsView) SortBy() SortKey { return v.sortBy }

func (v *ResultsView) SetSort(key SortKey) { v.sortBy = key }

func (v *ResultsView) ready() bool {
	return v.err == nil && !v.loading
}

// Outbound is the filtered, sorted outbound list; empty while loading.
func (v *ResultsView) Outbound() []FlightRecord {
	out, _ := v.lists()
	return out
}

// Return is the filtered, sorted return list; always empty for one-way trips.
func (v *ResultsView) Return() []FlightRecord {
	_, ret := v.lists()
	return ret
}

func (v *ResultsView) lists() (outbound, inbound []FlightRecord) {
	if !v.ready() {
		return nil, nil
	}
	out, ret := SplitByDirection(v.flights, *v.criteria)
	outbound = v.sorter.Sort(ApplyFilters(out, v.query, DirectionOutbound), v.sortBy)
	if v.criteria.IsRoundTrip() {
		inbound = v.sorter.Sort(ApplyFilters(ret, v.query, DirectionReturn), v.sortBy)
	}
	return outbound, inbound
}

// SelectOutbound picks the visible outbound card with the given flight code.
// Picking the already selected code again changes nothing.
func (v *ResultsView) SelectOutbound(iata string) error {
	f, err := v.find(v.Outbound(), iata)
	if err != nil {
		return err
	}
	v.selection.Outbound = f
	return nil
}

func (v *ResultsView) SelectReturn(iata string) error {
	f, err := v.find(v.Return(), iata)
	if err != nil {
		return err
	}
	v.selection.Return = f
	return nil
}

func (v *ResultsView) find(list []FlightRecord, iata string) (*FlightRecord, error) {
	if v.err != nil {
		return nil, v.err
	}
	if v.loading {
		return nil, ErrLoading
	}
	for i := range list {
		if list[i].Flight.IATA == iata {
			f := list[i]
			return &f, nil
		}
	}
	return nil, ErrFlightNotFound
}

func (v *ResultsView) Selection() Selection { return v.selection }

// ApplyPromo evaluates code once; after a code is accepted further entries
// are refused until the next search.
func (v *ResultsView) ApplyPromo(code string) (Promo, error) {
	if v.promo.Applied {
		return v.promo, ErrPromoLocked
	}
	v.promo = ApplyPromo(code)
	return v.promo, nil
}

func (v *ResultsView) Promo() Promo { return v.promo }

func (v *ResultsView) TotalFare() uint64 {
	var travellers uint64 = 1
	if v.criteria != nil {
		travellers = v.criteria.TravellerCount()
	}
	return ResultsTotal(v.selection, v.promo.Discount, travellers)
}

// BookingReady reports whether BookNow would succeed.
func (v *ResultsView) BookingReady() bool {
	return v.guard() == nil
}

func (v *ResultsView) guard() error {
	if v.err != nil {
		return v.err
	}
	if v.criteria.IsRoundTrip() {
		if v.selection.Outbound == nil || v.selection.Return == nil {
			return &ValidationError{Message: msgSelectBothLegs}
		}
		return nil
	}
	if v.selection.Outbound == nil {
		return &ValidationError{Message: msgSelectFlight}
	}
	return nil
}

// BookNow checks that every required leg is selected and, if so, hands the
// payload to h exactly once. A missing leg comes back as a *ValidationError
// and h is not called.
func (v *ResultsView) BookNow(h Handoff) (BookingPayload, error) {
	if err := v.guard(); err != nil {
		return BookingPayload{}, err
	}

	payload := BookingPayload{
		SearchParams: *v.criteria,
		TotalFare:    v.TotalFare(),
	}
	if v.criteria.IsRoundTrip() {
		payload.Outbound = v.selection.Outbound
		payload.Return = v.selection.Return
	} else {
		payload.Flight = v.selection.Outbound
	}

	if h != nil {
		h.Handoff(payload)
	}
	return payload, nil
}
