package flight

import (
	"context"
	"time"

	"flightdemo/pkg/logger"
	"flightdemo/pkg/ratelimit"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "flightdemo/internal/flight"

// Fallback reasons, recorded in logs and on the fallback counter.
const (
	reasonTransportFailure = "transport_failure"
	reasonEmptyResult      = "empty_result"
	reasonRateLimited      = "rate_limited"
)

// Service runs flight searches against the provider. It never returns an error: a
// failed or empty provider response is replaced by the fallback catalog.
type Service struct {
	provider  Provider
	limiter   *ratelimit.Limiter
	timeout   time.Duration
	logger    logger.Logger
	fallbacks metric.Int64Counter
}

func NewService(provider Provider, limiter *ratelimit.Limiter, timeout time.Duration, log logger.Logger) *Service {
	if limiter == nil {
		limiter = ratelimit.Unlimited()
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"flight.search.fallbacks",
		metric.WithDescription("Searches answered from the fallback catalog"),
	)
	if err != nil {
		log.Warn("failed to create fallback counter", logger.Err(err))
		counter = noop.Int64Counter{}
	}

	return &Service{
		provider:  provider,
		limiter:   limiter,
		timeout:   timeout,
		logger:    log,
		fallbacks: counter,
	}
}

func (s *Service) SearchFlights(ctx context.Context, req SearchRequest) SearchResult {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "flight.Search")
	defer span.End()

	if !req.DepartureAirport.HasCode() || !req.ArrivalAirport.HasCode() {
		s.logger.Warn("missing departure or arrival airport code",
			logger.Field{Key: "departure", Value: req.DepartureAirport.IATACode},
			logger.Field{Key: "arrival", Value: req.ArrivalAirport.IATACode},
		)
		span.SetAttributes(attribute.String("flight.provenance", string(ProvenanceUnsearched)))
		return SearchResult{Offers: []FlightOffer{}, Provenance: ProvenanceUnsearched}
	}

	route := req.DepartureAirport.IATACode + "->" + req.ArrivalAirport.IATACode
	span.SetAttributes(attribute.String("flight.route", route))

	if err := s.limiter.Allow(); err != nil {
		return s.fallback(ctx, req, reasonRateLimited, err)
	}

	searchCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	startTime := time.Now()
	offers, err := s.provider.SearchFlights(searchCtx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider search failed")
		return s.fallback(ctx, req, reasonTransportFailure, err)
	}
	if len(offers) == 0 {
		return s.fallback(ctx, req, reasonEmptyResult, nil)
	}

	s.logger.Info("flight search served live",
		logger.Field{Key: "route", Value: route},
		logger.Field{Key: "offers", Value: len(offers)},
		logger.Field{Key: "search_time_ms", Value: time.Since(startTime).Milliseconds()},
	)
	span.SetAttributes(attribute.String("flight.provenance", string(ProvenanceLive)))
	return SearchResult{Offers: offers, Provenance: ProvenanceLive}
}

// ProviderOnline reports whether the provider answers its status endpoint.
func (s *Service) ProviderOnline(ctx context.Context) bool {
	if err := s.provider.CheckServer(ctx); err != nil {
		s.logger.Warn("provider status check failed", logger.Err(err))
		return false
	}
	return true
}

func (s *Service) fallback(ctx context.Context, req SearchRequest, reason string, cause error) SearchResult {
	fields := []logger.Field{
		{Key: "reason", Value: reason},
		{Key: "route", Value: req.DepartureAirport.IATACode + "->" + req.ArrivalAirport.IATACode},
	}
	if cause != nil {
		fields = append(fields, logger.Err(cause))
	}
	s.logger.Warn("using fallback flight catalog", fields...)

	s.fallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	return SearchResult{Offers: FallbackCatalog(req), Provenance: ProvenanceFallback}
}
