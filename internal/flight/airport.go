package flight

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"flightdemo/pkg/cache"
	"flightdemo/pkg/logger"
)

// MinAirportQueryLength is the shortest query that reaches the provider; anything at or
// below it returns no options.
const MinAirportQueryLength = 2

// AirportDirectory serves autocomplete options. Successful non-empty lookups are cached;
// failures are absorbed and returned as an empty list.
type AirportDirectory struct {
	provider Provider
	cache    cache.Cache
	ttl      time.Duration
	logger   logger.Logger
}

func NewAirportDirectory(provider Provider, c cache.Cache, ttlMinutes int, logger logger.Logger) *AirportDirectory {
	if c == nil {
		c = cache.NewNoopCache()
	}
	return &AirportDirectory{
		provider: provider,
		cache:    c,
		ttl:      time.Duration(ttlMinutes) * time.Minute,
		logger:   logger,
	}
}

func (d *AirportDirectory) Search(ctx context.Context, query string) []Airport {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) <= MinAirportQueryLength {
		return []Airport{}
	}

	key := airportCacheKey(query)
	if airports, ok := d.fromCache(ctx, key); ok {
		return airports
	}

	airports, err := d.provider.SearchAirports(ctx, query)
	if err != nil {
		d.logger.Warn("airport search failed",
			logger.Err(err),
			logger.Field{Key: "query", Value: query},
		)
		return []Airport{}
	}
	if len(airports) == 0 {
		return []Airport{}
	}

	d.store(ctx, key, airports)
	return airports
}

// Coordinates looks up an airport's geo position. It returns nil when the code is empty,
// the provider fails, or the provider has no coordinates for it.
func (d *AirportDirectory) Coordinates(ctx context.Context, code string) *Coordinates {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || code == strings.ToUpper(UnknownIATA) {
		return nil
	}

	coords, err := d.provider.AirportCoordinates(ctx, code)
	if err != nil {
		d.logger.Warn("airport coordinates lookup failed",
			logger.Err(err),
			logger.Field{Key: "code", Value: code},
		)
		return nil
	}
	return coords
}

func (d *AirportDirectory) fromCache(ctx context.Context, key string) ([]Airport, bool) {
	cached, err := d.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			d.logger.Warn("airport cache read failed", logger.Err(err), logger.Field{Key: "cache_key", Value: key})
		}
		return nil, false
	}

	var airports []Airport
	if err := json.Unmarshal([]byte(cached), &airports); err != nil {
		d.logger.Error("failed to unmarshal cached airports", logger.Err(err), logger.Field{Key: "cache_key", Value: key})
		return nil, false
	}

	d.logger.Debug("airport cache hit", logger.Field{Key: "cache_key", Value: key})
	return airports, true
}

func (d *AirportDirectory) store(ctx context.Context, key string, airports []Airport) {
	data, err := json.Marshal(airports)
	if err != nil {
		d.logger.Error("failed to marshal airports", logger.Err(err))
		return
	}
	if err := d.cache.Set(ctx, key, string(data), d.ttl); err != nil {
		d.logger.Warn("failed to cache airports", logger.Err(err), logger.Field{Key: "cache_key", Value: key})
	}
}

func airportCacheKey(query string) string {
	return "airports:" + strings.ToLower(query)
}
