package flight

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"flightdemo/pkg/logger"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProvider is a mock implementation of Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) SearchFlights(ctx context.Context, req SearchRequest) ([]FlightOffer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FlightOffer), args.Error(1)
}

func (m *MockProvider) SearchAirports(ctx context.Context, query string) ([]Airport, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Airport), args.Error(1)
}

func (m *MockProvider) AirportCoordinates(ctx context.Context, code string) (*Coordinates, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Coordinates), args.Error(1)
}

func (m *MockProvider) CheckServer(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCache is a mock implementation of cache.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// sequenceIDs is an idgen.Generator handing out 1, 2, 3, ...
type sequenceIDs struct {
	next atomic.Int64
}

func (s *sequenceIDs) GenerateID() int64 {
	return s.next.Add(1)
}

func fixedNow() time.Time {
	return time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
}

func testLogger() logger.Logger {
	return logger.NewWithWriter("development", &bytes.Buffer{})
}

var (
	tlv = Airport{IATACode: "TLV", Name: "Ben Gurion", Country: "Israel"}
	ath = Airport{IATACode: "ATH", Name: "Athens International", Country: "Greece"}
)

func mustDate(t *testing.T, value string) Date {
	t.Helper()
	d, err := ParseDate(value)
	require.NoError(t, err)
	return d
}

func oneWayRequest(t *testing.T) SearchRequest {
	t.Helper()
	return SearchRequest{
		DepartureAirport: tlv,
		ArrivalAirport:   ath,
		DepartureDate:    mustDate(t, "2025-06-01"),
		TripType:         OneWay,
		Adults:           2,
		Children:         0,
	}
}

func roundTripRequest(t *testing.T) SearchRequest {
	t.Helper()
	ret := mustDate(t, "2025-06-08")
	return SearchRequest{
		DepartureAirport: tlv,
		ArrivalAirport:   ath,
		DepartureDate:    mustDate(t, "2025-06-01"),
		ReturnDate:       &ret,
		TripType:         RoundTrip,
		Adults:           1,
		Children:         0,
	}
}
