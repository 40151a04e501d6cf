package flightclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"flightdemo/cfg"
	"flightdemo/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "flightdemo/pkg/flightclient"

// ErrMissingCredentials is returned for every call when no API key is configured.
var ErrMissingCredentials = errors.New("sky scrapper api key not configured")

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("external api %s returned status %d", e.Endpoint, e.StatusCode)
}

// SkyScrapperClient talks to the Sky Scrapper flight API over RapidAPI. It only does
// transport and decoding; mapping into domain types lives in flight_client.go.
type SkyScrapperClient struct {
	httpClient *http.Client
	config     cfg.SkyScrapperConfig
	logger     logger.Logger
}

func NewSkyScrapperClient(httpClient *http.Client, config cfg.SkyScrapperConfig, logger logger.Logger) *SkyScrapperClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}
	return &SkyScrapperClient{
		httpClient: httpClient,
		config:     config,
		logger:     logger,
	}
}

type skyFlightsResponse struct {
	Flights []skyOffer `json:"flights"`
}

type skyOffer struct {
	Price       *float64 `json:"price"`
	Airline     string   `json:"airline"`
	AirlineLogo string   `json:"airline_logo"`
	Flights     []skyLeg `json:"flights"`
}

type skyLeg struct {
	DepartureDate       string      `json:"departure_date"`
	Airline             string      `json:"airline"`
	AirlineLogo         string      `json:"airline_logo"`
	DepartureTime       string      `json:"departure_time"`
	ArrivalTime         string      `json:"arrival_time"`
	Duration            skyDuration `json:"duration"`
	DepartureAirportLat *float64    `json:"departure_airport_lat"`
	DepartureAirportLng *float64    `json:"departure_airport_lng"`
	ArrivalAirportLat   *float64    `json:"arrival_airport_lat"`
	ArrivalAirportLng   *float64    `json:"arrival_airport_lng"`
}

type skyDuration struct {
	Text string `json:"text"`
}

type skyAirportsResponse struct {
	Data []skyAirport `json:"data"`
}

type skyAirport struct {
	SkyID        string           `json:"skyId"`
	Presentation *skyPresentation `json:"presentation"`
	Geo          *skyGeo          `json:"geo"`
}

type skyPresentation struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type skyGeo struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type skyFlightsParams struct {
	DepartureID  string
	ArrivalID    string
	OutboundDate string
	ReturnDate   string
	Adults       int
	Children     int
}

func (p skyFlightsParams) values(config cfg.SkyScrapperConfig) url.Values {
	v := url.Values{}
	v.Set("departure_id", p.DepartureID)
	v.Set("arrival_id", p.ArrivalID)
	v.Set("outbound_date", p.OutboundDate)
	if p.ReturnDate != "" {
		v.Set("return_date", p.ReturnDate)
	}
	v.Set("travel_class", "ECONOMY")
	v.Set("adults", fmt.Sprint(p.Adults))
	v.Set("children", fmt.Sprint(p.Children))
	v.Set("currency", config.Currency)
	v.Set("language_code", config.LanguageCode)
	v.Set("country_code", config.CountryCode)
	return v
}

func (c *SkyScrapperClient) getFlights(ctx context.Context, params skyFlightsParams) (*skyFlightsResponse, error) {
	var resp skyFlightsResponse
	if err := c.get(ctx, "searchFlights", "/searchFlights", params.values(c.config), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *SkyScrapperClient) getAirports(ctx context.Context, query string) (*skyAirportsResponse, error) {
	v := url.Values{}
	v.Set("query", query)
	v.Set("locale", c.config.LanguageCode)

	var resp skyAirportsResponse
	if err := c.get(ctx, "searchAirport", "/searchAirport", v, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *SkyScrapperClient) getAirport(ctx context.Context, code string) (*skyAirportsResponse, error) {
	var resp skyAirportsResponse
	if err := c.get(ctx, "airport", "/airport/"+url.PathEscape(code), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CheckServer calls the provider's status endpoint.
func (c *SkyScrapperClient) CheckServer(ctx context.Context) error {
	var resp json.RawMessage
	return c.get(ctx, "checkServer", "/checkServer", nil, &resp)
}

func (c *SkyScrapperClient) get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "skyscrapper."+endpoint)
	defer span.End()

	if c.config.APIKey == "" {
		span.SetStatus(codes.Error, ErrMissingCredentials.Error())
		return ErrMissingCredentials
	}

	target := c.config.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.logger.Error("failed to build sky scrapper request", logger.Err(err), logger.Field{Key: "endpoint", Value: endpoint})
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.config.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.config.Host)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("calling sky scrapper", logger.Field{Key: "endpoint", Value: endpoint})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return fmt.Errorf("external api call failed: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}
