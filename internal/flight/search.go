package flight

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tripar/pkg/cache"
	"tripar/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SearchFlights returns the normalized flights for criteria. Live results are
// cached; a failed, timed out or empty live fetch falls back to the fixed
// dataset, which is never cached so the next search tries the live API again.
func (s *Service) SearchFlights(ctx context.Context, req SearchCriteria) (*SearchResponse, error) {
	ctx, span := s.tracer.Start(ctx, "flight.SearchFlights")
	defer span.End()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	cacheKey := s.generateCacheKey(req)
	cached, err := s.cache.Get(ctx, cacheKey)
	if err != nil && !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("SearchFlights", logger.Field{Key: "err_get_cache", Value: err})
	}

	// Return immediately if the response exists in cache
	if err == nil && cached != "" {
		var flights []FlightRecord
		if err := json.Unmarshal([]byte(cached), &flights); err == nil {
			s.record(ctx, SourceLive, true)
			return &SearchResponse{
				SearchCriteria: req,
				Metadata: Metadata{
					TotalResults: uint32(len(flights)),
					Source:       SourceLive,
					CacheKey:     cacheKey,
					CacheHit:     true,
				},
				Flights: flights,
			}, nil
		}
		s.logger.Error("SearchFlights", logger.Field{Key: "err_unmarshal", Value: err})
	}

	startTime := time.Now()
	raws, source := s.fetch(ctx, req)
	flights := s.normalizer.NormalizeAll(raws, req.TravelClass)
	searchTime := time.Since(startTime).Milliseconds()

	span.SetAttributes(
		attribute.String("flight.source", source),
		attribute.Int("flight.results", len(flights)),
	)
	s.record(ctx, source, false)

	if source == SourceLive {
		s.store(ctx, cacheKey, flights)
	}

	return &SearchResponse{
		SearchCriteria: req,
		Metadata: Metadata{
			TotalResults: uint32(len(flights)),
			Source:       source,
			SearchTimeMs: uint32(searchTime),
			CacheKey:     cacheKey,
		},
		Flights: flights,
	}, nil
}

// fetch makes the single live attempt for a search.
func (s *Service) fetch(ctx context.Context, req SearchCriteria) ([]RawFlight, string) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	route := req.From + "->" + req.To
	raws, err := s.flightClient.FetchFlights(fetchCtx, req)
	if err != nil {
		s.logger.Warn("live flight fetch failed, using fallback data",
			logger.Field{Key: "route", Value: route},
			logger.Field{Key: "timeout", Value: s.fetchTimeout},
			logger.Field{Key: "err", Value: err},
		)
		return FallbackFlights(), SourceFallback
	}
	if len(raws) == 0 {
		s.logger.Info("live flight API returned no flights, using fallback data",
			logger.Field{Key: "route", Value: route},
		)
		return FallbackFlights(), SourceFallback
	}
	return raws, SourceLive
}

func (s *Service) store(ctx context.Context, cacheKey string, flights []FlightRecord) {
	responseBytes, err := json.Marshal(flights)
	if err != nil {
		s.logger.Error("SearchFlights", logger.Field{Key: "err_marshal", Value: err})
		return
	}
	if err := s.cache.Set(ctx, cacheKey, string(responseBytes), s.ttl); err != nil {
		s.logger.Error("SearchFlights", logger.Field{Key: "err_set_cache", Value: err})
	}
}

func (s *Service) record(ctx context.Context, source string, cacheHit bool) {
	attrs := metric.WithAttributes(
		attribute.String("source", source),
		attribute.Bool("cache_hit", cacheHit),
	)
	s.searches.Add(ctx, 1, attrs)
	if source == SourceFallback {
		s.fallbacks.Add(ctx, 1)
	}
}
