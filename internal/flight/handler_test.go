package flight

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, provider *MockProvider) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	builder := NewBuilder(fixedNow)
	svc := newTestService(provider)
	airports := NewAirportDirectory(provider, nil, 60, testLogger())
	sessions := NewSessions(&sequenceIDs{}, builder, svc, DefaultSessionTTL, testLogger())
	t.Cleanup(sessions.Stop)

	r := gin.New()
	NewFlightHandler(svc, airports, sessions, builder).RegisterRoutes(r)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const oneWayBody = `{
	"departure": {"iata": "TLV", "name": "Ben Gurion", "country": "Israel"},
	"arrival": {"iata": "ATH", "name": "Athens International", "country": "Greece"},
	"departure_date": "2025-06-01",
	"return_date": "2025-06-08",
	"trip_type": "one-way",
	"adults": 2,
	"children": 0
}`

func TestSearchFlightsHandler_LiveScenario(t *testing.T) {
	provider := new(MockProvider)
	provider.On("SearchFlights", mock.Anything, mock.MatchedBy(func(req SearchRequest) bool {
		return req.ReturnDate == nil && req.Adults == 2
	})).Return([]FlightOffer{{
		TotalPrice:     price(250),
		AirlineName:    "El Al",
		AirlineLogoURL: "https://example.com/elal.png",
		Legs:           []FlightLeg{{DepartureDate: "2025-06-01"}},
	}}, nil)

	w := doJSON(newTestRouter(t, provider), http.MethodPost, "/v1/flights/search", oneWayBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Nil(t, resp.Request.ReturnDate)
	assert.Equal(t, ProvenanceLive, resp.Results.Provenance)
	require.Len(t, resp.Results.Offers, 1)
	assert.Equal(t, "125.00 USD per passenger", resp.Results.Offers[0].PricePerPassenger)
}

func TestSearchFlightsHandler_ProviderDownStillOK(t *testing.T) {
	provider := new(MockProvider)
	provider.On("SearchFlights", mock.Anything, mock.Anything).Return(nil, errors.New("503"))

	w := doJSON(newTestRouter(t, provider), http.MethodPost, "/v1/flights/search", oneWayBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ProvenanceFallback, resp.Results.Provenance)
	assert.Len(t, resp.Results.Offers, 4)
	assert.True(t, resp.Results.Route.Available)
}

func TestSearchFlightsHandler_ValidationErrors(t *testing.T) {
	provider := new(MockProvider)
	r := newTestRouter(t, provider)

	tests := []struct {
		name string
		body string
		code ErrorCode
	}{
		{"malformed json", `{"departure":`, ErrorCodeValidation},
		{"missing arrival", `{"departure": {"iata": "TLV"}, "departure_date": "2025-06-01"}`, ErrorCodeMissingField},
		{"bad range", `{"departure": {"iata": "TLV"}, "arrival": {"iata": "ATH"},
			"departure_date": "2025-06-08", "return_date": "2025-06-01", "trip_type": "round-trip"}`, ErrorCodeInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/v1/flights/search", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, string(tt.code), body["code"])
		})
	}

	provider.AssertNotCalled(t, "SearchFlights", mock.Anything, mock.Anything)
}

func TestSearchAirportsHandler(t *testing.T) {
	provider := new(MockProvider)
	provider.On("SearchAirports", mock.Anything, "athens").Return([]Airport{ath}, nil)
	r := newTestRouter(t, provider)

	w := doJSON(r, http.MethodGet, "/v1/airports?query=athens", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp AirportsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []Airport{ath}, resp.Airports)

	w = doJSON(r, http.MethodGet, "/v1/airports?query=at", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"airports": []}`, w.Body.String())
	provider.AssertNumberOfCalls(t, "SearchAirports", 1)
}

func TestAirportCoordinatesHandler(t *testing.T) {
	provider := new(MockProvider)
	provider.On("AirportCoordinates", mock.Anything, "ATH").Return(nil, errors.New("down"))

	w := doJSON(newTestRouter(t, provider), http.MethodGet, "/v1/airports/ATH/coordinates", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code": "ATH", "available": false}`, w.Body.String())
}

func TestProviderStatusHandler(t *testing.T) {
	provider := new(MockProvider)
	provider.On("CheckServer", mock.Anything).Return(nil)

	w := doJSON(newTestRouter(t, provider), http.MethodGet, "/v1/provider/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"online": true}`, w.Body.String())
}

func TestSessionHandlers_Lifecycle(t *testing.T) {
	provider := new(MockProvider)
	provider.On("SearchFlights", mock.Anything, mock.Anything).Return([]FlightOffer{}, nil)
	r := newTestRouter(t, provider)

	w := doJSON(r, http.MethodPost, "/v1/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var opened SessionSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opened))
	assert.Equal(t, StateIdle, opened.State)

	w = doJSON(r, http.MethodPost, "/v1/sessions/"+opened.ID+"/search", oneWayBody)
	require.Equal(t, http.StatusOK, w.Code)

	var searched SessionSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &searched))
	assert.Equal(t, StateFallback, searched.State)
	assert.False(t, searched.Discarded)
	require.NotNil(t, searched.Presentation)
	assert.Equal(t, ProvenanceFallback, searched.Presentation.Provenance)

	w = doJSON(r, http.MethodGet, "/v1/sessions/"+opened.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/v1/sessions/"+opened.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, "/v1/sessions/"+opened.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/v1/sessions/not-a-number", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
