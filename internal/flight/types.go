package flight

const (
	UnknownIATA    = "Unknown"
	UnknownAirport = "Unknown Airport"
	UnknownCountry = "Unknown Country"
	UnknownAirline = "Unknown Airline"
	UnknownDate    = "Unknown Date"

	PlaceholderLogoURL = "https://upload.wikimedia.org/wikipedia/commons/a/ac/No_image_available.svg"
)

type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Airport is one autocomplete option. Coordinates is nil when the provider omits geo data.
type Airport struct {
	IATACode    string       `json:"iata"`
	Name        string       `json:"name"`
	Country     string       `json:"country"`
	Coordinates *Coordinates `json:"location,omitempty"`
}

// HasCode reports whether the airport carries a code the provider can search on.
func (a Airport) HasCode() bool {
	return a.IATACode != "" && a.IATACode != UnknownIATA
}

type TripType string

const (
	OneWay    TripType = "one-way"
	RoundTrip TripType = "round-trip"
)

// SearchRequest is a validated search submission. ReturnDate is set only for round trips.
type SearchRequest struct {
	DepartureAirport Airport  `json:"departure"`
	ArrivalAirport   Airport  `json:"arrival"`
	DepartureDate    Date     `json:"departure_date"`
	ReturnDate       *Date    `json:"return_date,omitempty"`
	TripType         TripType `json:"trip_type"`
	Adults           int      `json:"adults"`
	Children         int      `json:"children"`
}

func (r SearchRequest) Passengers() int {
	return r.Adults + r.Children
}

type FlightLeg struct {
	DepartureDate        string       `json:"departure_date"`
	DepartureTime        string       `json:"departure_time"`
	ArrivalTime          string       `json:"arrival_time"`
	DurationText         string       `json:"duration"`
	DepartureCoordinates *Coordinates `json:"departure_coordinates,omitempty"`
	ArrivalCoordinates   *Coordinates `json:"arrival_coordinates,omitempty"`
	AirlineName          string       `json:"airline"`
}

// FlightOffer is one priced option. Legs holds the outbound leg first and, for round
// trips, the return leg second. TotalPrice is in USD and nil when the provider omits it.
type FlightOffer struct {
	TotalPrice     *float64    `json:"price,omitempty"`
	AirlineName    string      `json:"airline"`
	AirlineLogoURL string      `json:"airline_logo"`
	Legs           []FlightLeg `json:"legs"`
}

// Provenance tells where a result set came from.
type Provenance string

const (
	ProvenanceLive       Provenance = "live"
	ProvenanceFallback   Provenance = "fallback"
	ProvenanceUnsearched Provenance = "unsearched"
)

type SearchResult struct {
	Offers     []FlightOffer `json:"offers"`
	Provenance Provenance    `json:"provenance"`
}
