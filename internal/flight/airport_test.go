package flight

import (
	"context"
	"errors"
	"testing"
	"time"

	"flightdemo/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAirportDirectory_ShortQuerySkipsProvider(t *testing.T) {
	provider := new(MockProvider)
	dir := NewAirportDirectory(provider, nil, 60, testLogger())

	for _, q := range []string{"", "t", "te", "  te  "} {
		airports := dir.Search(context.Background(), q)
		assert.NotNil(t, airports)
		assert.Empty(t, airports)
	}

	provider.AssertNotCalled(t, "SearchAirports", mock.Anything, mock.Anything)
}

func TestAirportDirectory_ProviderErrorYieldsEmpty(t *testing.T) {
	provider := new(MockProvider)
	provider.On("SearchAirports", mock.Anything, "tel").Return(nil, errors.New("connection refused"))

	dir := NewAirportDirectory(provider, nil, 60, testLogger())
	airports := dir.Search(context.Background(), "tel")

	assert.NotNil(t, airports)
	assert.Empty(t, airports)
	provider.AssertExpectations(t)
}

func TestAirportDirectory_CachesSuccessfulLookups(t *testing.T) {
	provider := new(MockProvider)
	c := new(MockCache)

	provider.On("SearchAirports", mock.Anything, "Tel Aviv").Return([]Airport{tlv}, nil).Once()
	c.On("Get", mock.Anything, "airports:tel aviv").Return("", cache.ErrMiss).Once()
	c.On("Set", mock.Anything, "airports:tel aviv", mock.AnythingOfType("string"), time.Hour).Return(nil).Once()

	dir := NewAirportDirectory(provider, c, 60, testLogger())
	airports := dir.Search(context.Background(), "Tel Aviv")

	assert.Equal(t, []Airport{tlv}, airports)
	provider.AssertExpectations(t)
	c.AssertExpectations(t)
}

func TestAirportDirectory_ServesFromCache(t *testing.T) {
	provider := new(MockProvider)
	c := new(MockCache)
	c.On("Get", mock.Anything, "airports:ath").
		Return(`[{"iata":"ATH","name":"Athens International","country":"Greece"}]`, nil)

	dir := NewAirportDirectory(provider, c, 60, testLogger())
	airports := dir.Search(context.Background(), "ATH")

	assert.Equal(t, []Airport{ath}, airports)
	provider.AssertNotCalled(t, "SearchAirports", mock.Anything, mock.Anything)
}

func TestAirportDirectory_EmptyResultNotCached(t *testing.T) {
	provider := new(MockProvider)
	c := new(MockCache)

	provider.On("SearchAirports", mock.Anything, "zzz").Return([]Airport{}, nil)
	c.On("Get", mock.Anything, "airports:zzz").Return("", cache.ErrMiss)

	dir := NewAirportDirectory(provider, c, 60, testLogger())
	assert.Empty(t, dir.Search(context.Background(), "zzz"))

	c.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAirportDirectory_CacheFailureFallsThrough(t *testing.T) {
	provider := new(MockProvider)
	c := new(MockCache)

	provider.On("SearchAirports", mock.Anything, "ath").Return([]Airport{ath}, nil)
	c.On("Get", mock.Anything, "airports:ath").Return("", errors.New("redis down"))
	c.On("Set", mock.Anything, "airports:ath", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	dir := NewAirportDirectory(provider, c, 60, testLogger())
	assert.Equal(t, []Airport{ath}, dir.Search(context.Background(), "ath"))
}

func TestAirportDirectory_Coordinates(t *testing.T) {
	provider := new(MockProvider)
	athens := &Coordinates{Latitude: 37.9, Longitude: 23.7}
	provider.On("AirportCoordinates", mock.Anything, "ATH").Return(athens, nil)
	provider.On("AirportCoordinates", mock.Anything, "LHR").Return(nil, errors.New("timeout"))

	dir := NewAirportDirectory(provider, nil, 60, testLogger())

	assert.Equal(t, athens, dir.Coordinates(context.Background(), "ath"))
	assert.Nil(t, dir.Coordinates(context.Background(), "LHR"))
	assert.Nil(t, dir.Coordinates(context.Background(), ""))
	assert.Nil(t, dir.Coordinates(context.Background(), UnknownIATA))
}
