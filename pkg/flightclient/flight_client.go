package flightclient

import (
	"context"
	"strings"

	"flightdemo/internal/flight"
)

var _ flight.Provider = (*SkyScrapperClient)(nil)

// SearchFlights queries the provider once and normalizes every offer. Offers without
// any leg are dropped since nothing about them can be displayed.
func (c *SkyScrapperClient) SearchFlights(ctx context.Context, req flight.SearchRequest) ([]flight.FlightOffer, error) {
	params := skyFlightsParams{
		DepartureID:  req.DepartureAirport.IATACode,
		ArrivalID:    req.ArrivalAirport.IATACode,
		OutboundDate: req.DepartureDate.String(),
		Adults:       req.Adults,
		Children:     req.Children,
	}
	if req.ReturnDate != nil {
		params.ReturnDate = req.ReturnDate.String()
	}

	resp, err := c.getFlights(ctx, params)
	if err != nil {
		return nil, err
	}
	return mapOffers(resp), nil
}

func (c *SkyScrapperClient) SearchAirports(ctx context.Context, query string) ([]flight.Airport, error) {
	resp, err := c.getAirports(ctx, query)
	if err != nil {
		return nil, err
	}
	return mapAirports(resp), nil
}

// AirportCoordinates returns the first result's geo pair, or nil when there is none.
func (c *SkyScrapperClient) AirportCoordinates(ctx context.Context, code string) (*flight.Coordinates, error) {
	resp, err := c.getAirport(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return mapGeo(resp.Data[0].Geo), nil
}

func mapOffers(resp *skyFlightsResponse) []flight.FlightOffer {
	mapped := make([]flight.FlightOffer, 0, len(resp.Flights))

	for _, o := range resp.Flights {
		if len(o.Flights) == 0 {
			continue
		}

		airline := nonEmpty(o.Airline, flight.UnknownAirline)
		legs := make([]flight.FlightLeg, 0, len(o.Flights))
		for _, l := range o.Flights {
			legs = append(legs, flight.FlightLeg{
				DepartureDate:        nonEmpty(l.DepartureDate, flight.UnknownDate),
				DepartureTime:        l.DepartureTime,
				ArrivalTime:          l.ArrivalTime,
				DurationText:         l.Duration.Text,
				DepartureCoordinates: coordinates(l.DepartureAirportLat, l.DepartureAirportLng),
				ArrivalCoordinates:   coordinates(l.ArrivalAirportLat, l.ArrivalAirportLng),
				AirlineName:          nonEmpty(l.Airline, airline),
			})
		}

		mapped = append(mapped, flight.FlightOffer{
			TotalPrice:     o.Price,
			AirlineName:    airline,
			AirlineLogoURL: flight.ValidLogoURL(o.AirlineLogo),
			Legs:           legs,
		})
	}
	return mapped
}

func mapAirports(resp *skyAirportsResponse) []flight.Airport {
	mapped := make([]flight.Airport, 0, len(resp.Data))

	for _, a := range resp.Data {
		airport := flight.Airport{
			IATACode:    nonEmpty(a.SkyID, flight.UnknownIATA),
			Name:        flight.UnknownAirport,
			Country:     flight.UnknownCountry,
			Coordinates: mapGeo(a.Geo),
		}
		if a.Presentation != nil {
			airport.Name = nonEmpty(a.Presentation.Title, flight.UnknownAirport)
			airport.Country = nonEmpty(a.Presentation.Subtitle, flight.UnknownCountry)
		}
		mapped = append(mapped, airport)
	}
	return mapped
}

func mapGeo(geo *skyGeo) *flight.Coordinates {
	if geo == nil {
		return nil
	}
	return coordinates(geo.Lat, geo.Lng)
}

func coordinates(lat, lng *float64) *flight.Coordinates {
	if lat == nil || lng == nil {
		return nil
	}
	return &flight.Coordinates{Latitude: *lat, Longitude: *lng}
}

func nonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
