package flight

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"tripar/pkg/cache"
	"tripar/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "tripar/internal/flight"

// FlightClient fetches raw flights from the live flight API.
type FlightClient interface {
	FetchFlights(ctx context.Context, criteria SearchCriteria) ([]RawFlight, error)
}

type ServiceConfig struct {
	CacheTTL            time.Duration
	FetchTimeout        time.Duration
	NumericDurationSort bool
}

type Service struct {
	flightClient FlightClient
	cache        cache.Cache
	ttl          time.Duration
	fetchTimeout time.Duration
	normalizer   *Normalizer
	sorter       *Sorter
	logger       logger.Logger

	tracer    trace.Tracer
	searches  metric.Int64Counter
	fallbacks metric.Int64Counter
}

func NewService(flightClient FlightClient, cache cache.Cache, cfg ServiceConfig, log logger.Logger) *Service {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 7 * time.Second
	}

	s := &Service{
		flightClient: flightClient,
		cache:        cache,
		ttl:          cfg.CacheTTL,
		fetchTimeout: cfg.FetchTimeout,
		normalizer:   NewNormalizer(),
		sorter:       NewSorter(cfg.NumericDurationSort),
		logger:       log,
		tracer:       otel.Tracer(instrumentationName),
	}

	meter := otel.Meter(instrumentationName)
	s.searches = s.counter(meter, "flight.search.requests", "Flight searches served")
	s.fallbacks = s.counter(meter, "flight.search.fallback", "Flight searches answered from the fallback dataset")
	return s
}

func (s *Service) counter(meter metric.Meter, name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		s.logger.Warn("failed to create counter", logger.Field{Key: "name", Value: name}, logger.Field{Key: "err", Value: err})
		c, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter(name)
	}
	return c
}

// generateCacheKey creates a deterministic key from the criteria that change
// the flight list: route, dates and class (which prices flights without a fare).
func (s *Service) generateCacheKey(c SearchCriteria) string {
	returnDate := ""
	if c.IsRoundTrip() {
		returnDate = c.ReturnDate
	}
	key := fmt.Sprintf("flight:%s:%s:%s:%s:%s",
		normalizeLocation(c.From),
		normalizeLocation(c.To),
		c.Departure,
		returnDate,
		c.TravelClass,
	)

	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("flight:search:%x", hash[:16])
}

// InvalidateCache manually invalidates cache for a specific search
func (s *Service) InvalidateCache(ctx context.Context, c SearchCriteria) error {
	cacheKey := s.generateCacheKey(c)
	s.logger.Info("Invalidating cache", logger.Field{Key: "cache_key", Value: cacheKey})
	return s.cache.Del(ctx, cacheKey)
}

// newView builds a results view already loaded with flights for criteria.
func (s *Service) newView(criteria SearchCriteria, flights []FlightRecord) (*ResultsView, error) {
	view := NewResultsView(s.sorter)
	gen, err := view.BeginSearch(criteria)
	if err != nil {
		return nil, err
	}
	view.ApplyResults(gen, flights)
	return view, nil
}

// FilterFlights runs a search and returns both legs filtered and sorted, plus
// the fare of any legs and promo code named in the request. Legs are chosen
// before the filters apply, as a selection survives later filter changes.
func (s *Service) FilterFlights(ctx context.Context, req ResultsRequest) (*ResultsResponse, error) {
	ctx, span := s.tracer.Start(ctx, "flight.FilterFlights")
	defer span.End()

	if err := req.Filters.Validate(); err != nil {
		return nil, err
	}

	response, err := s.SearchFlights(ctx, req.SearchCriteria)
	if err != nil {
		return nil, err
	}

	view, err := s.newView(req.SearchCriteria, response.Flights)
	if err != nil {
		return nil, err
	}

	if req.SelectedOut != "" {
		if err := view.SelectOutbound(req.SelectedOut); err != nil {
			return nil, fmt.Errorf("outbound %s: %w", req.SelectedOut, err)
		}
	}
	if req.SelectedReturn != "" {
		if err := view.SelectReturn(req.SelectedReturn); err != nil {
			return nil, fmt.Errorf("return %s: %w", req.SelectedReturn, err)
		}
	}
	if req.PromoCode != "" {
		if _, err := view.ApplyPromo(req.PromoCode); err != nil {
			return nil, err
		}
	}

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = SortByPrice
	}
	view.SetQuery(req.FilterQuery)
	view.SetSort(sortBy)

	outbound, inbound := view.Outbound(), view.Return()
	metadata := response.Metadata
	metadata.TotalResults = uint32(len(outbound) + len(inbound))

	return &ResultsResponse{
		SearchCriteria: req.SearchCriteria,
		Metadata:       metadata,
		SortBy:         sortBy,
		Outbound:       nonNil(outbound),
		Return:         nonNil(inbound),
		Fare: FareView{
			Selection:    view.Selection(),
			Promo:        view.Promo(),
			TotalFare:    view.TotalFare(),
			BookingReady: view.BookingReady(),
		},
	}, nil
}

// BookNow selects the requested legs and, when the selection is complete,
// returns the payload handed to the booking step.
func (s *Service) BookNow(ctx context.Context, req BookRequest) (*BookingPayload, error) {
	ctx, span := s.tracer.Start(ctx, "flight.BookNow")
	defer span.End()

	response, err := s.SearchFlights(ctx, req.SearchCriteria)
	if err != nil {
		return nil, err
	}

	view, err := s.newView(req.SearchCriteria, response.Flights)
	if err != nil {
		return nil, err
	}

	if req.Outbound != "" {
		if err := view.SelectOutbound(req.Outbound); err != nil {
			return nil, fmt.Errorf("outbound %s: %w", req.Outbound, err)
		}
	}
	if req.Return != "" {
		if err := view.SelectReturn(req.Return); err != nil {
			return nil, fmt.Errorf("return %s: %w", req.Return, err)
		}
	}
	if req.PromoCode != "" {
		if _, err := view.ApplyPromo(req.PromoCode); err != nil {
			return nil, err
		}
	}

	payload, err := view.BookNow(nil)
	if err != nil {
		s.logger.Info("booking blocked", logger.Field{Key: "reason", Value: err.Error()})
		return nil, err
	}

	s.logger.Info("booking handoff",
		logger.Field{Key: "trip_type", Value: string(req.TripType)},
		logger.Field{Key: "total_fare", Value: payload.TotalFare},
	)
	return &payload, nil
}

func nonNil(flights []FlightRecord) []FlightRecord {
	if flights == nil {
		return []FlightRecord{}
	}
	return flights
}
