package flight

import (
	"fmt"
	"net/url"
	"strings"
)

const PriceUnavailable = "Price Unavailable"

type LegView struct {
	Date      string `json:"date"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Duration  string `json:"duration"`
}

type DisplayOffer struct {
	AirlineName       string   `json:"airline"`
	LogoURL           string   `json:"logo_url"`
	PricePerPassenger string   `json:"price_per_passenger"`
	PriceAvailable    bool     `json:"price_available"`
	Outbound          *LegView `json:"outbound,omitempty"`
	Return            *LegView `json:"return,omitempty"`
}

// RouteView feeds the map. Available is false when the first offer's first leg has no
// coordinates; nothing is guessed in that case.
type RouteView struct {
	Available bool         `json:"available"`
	Departure *Coordinates `json:"departure,omitempty"`
	Arrival   *Coordinates `json:"arrival,omitempty"`
}

type Presentation struct {
	Title          string         `json:"title"`
	PassengerLabel string         `json:"passenger_label"`
	Provenance     Provenance     `json:"provenance"`
	Offers         []DisplayOffer `json:"offers"`
	Route          RouteView      `json:"route"`
}

// Present derives everything the results page renders from one search result.
func Present(result SearchResult, req SearchRequest) Presentation {
	return Presentation{
		Title:          tripTitle(req.TripType),
		PassengerLabel: passengerLabel(passengerCount(req)),
		Provenance:     result.Provenance,
		Offers:         PresentOffers(result.Offers, req),
		Route:          RouteFor(result.Offers),
	}
}

func PresentOffers(offers []FlightOffer, req SearchRequest) []DisplayOffer {
	passengers := passengerCount(req)
	out := make([]DisplayOffer, 0, len(offers))

	for _, o := range offers {
		view := DisplayOffer{
			AirlineName:       o.AirlineName,
			LogoURL:           ValidLogoURL(o.AirlineLogoURL),
			PricePerPassenger: PerPassengerPrice(o.TotalPrice, passengers),
			PriceAvailable:    priceAvailable(o.TotalPrice),
		}
		if view.AirlineName == "" {
			view.AirlineName = UnknownAirline
		}
		if len(o.Legs) > 0 {
			view.Outbound = legView(o.Legs[0])
		}
		if req.TripType == RoundTrip && len(o.Legs) > 1 {
			view.Return = legView(o.Legs[1])
		}
		out = append(out, view)
	}

	return out
}

// PerPassengerPrice splits the total evenly across passengers, or reports the price as
// unavailable when the provider gave none.
func PerPassengerPrice(total *float64, passengers int) string {
	if !priceAvailable(total) {
		return PriceUnavailable
	}
	if passengers < 1 {
		passengers = 1
	}
	return fmt.Sprintf("%.2f USD per passenger", *total/float64(passengers))
}

// ValidLogoURL keeps absolute http(s) URLs and replaces anything else with the
// placeholder image, which is itself accepted.
func ValidLogoURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return PlaceholderLogoURL
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return trimmed
	default:
		return PlaceholderLogoURL
	}
}

// RouteFor uses the first offer's first leg only.
func RouteFor(offers []FlightOffer) RouteView {
	if len(offers) == 0 || len(offers[0].Legs) == 0 {
		return RouteView{}
	}
	leg := offers[0].Legs[0]
	if leg.DepartureCoordinates == nil || leg.ArrivalCoordinates == nil {
		return RouteView{}
	}
	return RouteView{
		Available: true,
		Departure: leg.DepartureCoordinates,
		Arrival:   leg.ArrivalCoordinates,
	}
}

// A zero total is treated like a missing one.
func priceAvailable(total *float64) bool {
	return total != nil && *total > 0
}

func passengerCount(req SearchRequest) int {
	adults, children := ClampPassengers(req.Adults, req.Children)
	return adults + children
}

func legView(leg FlightLeg) *LegView {
	return &LegView{
		Date:      leg.DepartureDate,
		Departure: leg.DepartureTime,
		Arrival:   leg.ArrivalTime,
		Duration:  leg.DurationText,
	}
}

func tripTitle(t TripType) string {
	if t == RoundTrip {
		return "Round-Trip Flight"
	}
	return "One-Way Flight"
}

func passengerLabel(n int) string {
	if n > 1 {
		return fmt.Sprintf("%d Passengers", n)
	}
	return fmt.Sprintf("%d Passenger", n)
}
