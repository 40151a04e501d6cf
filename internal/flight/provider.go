package flight

import "context"

// Provider is the external flight/airport search API. Implementations normalize
// responses into domain types and report every failure as an error; the services in
// this package decide how failures degrade.
type Provider interface {
	SearchFlights(ctx context.Context, req SearchRequest) ([]FlightOffer, error)
	SearchAirports(ctx context.Context, query string) ([]Airport, error)
	AirportCoordinates(ctx context.Context, code string) (*Coordinates, error)
	CheckServer(ctx context.Context) error
}
