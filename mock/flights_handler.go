package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

type FlightsResponse struct {
	Flights []Offer `json:"flights"`
}

type Offer struct {
	Price       *float64 `json:"price,omitempty"`
	Airline     string   `json:"airline"`
	AirlineLogo string   `json:"airline_logo"`
	Flights     []Leg    `json:"flights"`
}

type Leg struct {
	DepartureDate       string   `json:"departure_date"`
	Airline             string   `json:"airline"`
	AirlineLogo         string   `json:"airline_logo"`
	DepartureTime       string   `json:"departure_time"`
	ArrivalTime         string   `json:"arrival_time"`
	Duration            Duration `json:"duration"`
	DepartureAirportLat float64  `json:"departure_airport_lat"`
	DepartureAirportLng float64  `json:"departure_airport_lng"`
	ArrivalAirportLat   float64  `json:"arrival_airport_lat"`
	ArrivalAirportLng   float64  `json:"arrival_airport_lng"`
}

type Duration struct {
	Text string `json:"text"`
}

type route struct {
	from, to string
	airline  string
	logo     string
	price    float64
	depart   string
	arrive   string
	duration string
}

var routes = []route{
	{"TLV", "ATH", "El Al", "https://www.gstatic.com/flights/airline_logos/70px/LY.png", 250, "08:30 AM", "11:45 AM", "3h 15m"},
	{"TLV", "ATH", "Aegean Airlines", "https://www.gstatic.com/flights/airline_logos/70px/A3.png", 300, "10:00 AM", "01:10 PM", "3h 10m"},
	{"TLV", "LHR", "British Airways", "https://www.gstatic.com/flights/airline_logos/70px/BA.png", 420, "01:00 PM", "05:30 PM", "5h 30m"},
	{"TLV", "FRA", "Lufthansa", "https://www.gstatic.com/flights/airline_logos/70px/LH.png", 380, "09:00 AM", "12:45 PM", "4h 45m"},
	{"TLV", "FRA", "Condor", "logo-missing", 0, "11:20 PM", "03:05 AM", "4h 45m"},
}

func SearchFlightsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := strings.ToUpper(q.Get("departure_id"))
	to := strings.ToUpper(q.Get("arrival_id"))
	outbound := q.Get("outbound_date")
	inbound := q.Get("return_date")

	if from == "" || to == "" || outbound == "" {
		http.Error(w, `{"message":"departure_id, arrival_id and outbound_date are required"}`, http.StatusBadRequest)
		return
	}

	adults, _ := strconv.Atoi(q.Get("adults"))
	children, _ := strconv.Atoi(q.Get("children"))
	passengers := max(1, adults+children)

	offers := make([]Offer, 0)
	for _, rt := range routes {
		forward := rt.from == from && rt.to == to
		backward := rt.from == to && rt.to == from
		if !forward && !backward {
			continue
		}

		out := leg(rt, outbound, forward)
		legs := []Leg{out}
		if inbound != "" {
			legs = append(legs, leg(rt, inbound, !forward))
		}

		offer := Offer{Airline: rt.airline, AirlineLogo: rt.logo, Flights: legs}
		if rt.price > 0 {
			total := rt.price * float64(passengers)
			offer.Price = &total
		}
		offers = append(offers, offer)
	}

	json.NewEncoder(w).Encode(FlightsResponse{Flights: offers})
}

func leg(rt route, date string, forward bool) Leg {
	from, to := airportsByCode[rt.from], airportsByCode[rt.to]
	if !forward {
		from, to = to, from
	}
	return Leg{
		DepartureDate:       date,
		Airline:             rt.airline,
		AirlineLogo:         rt.logo,
		DepartureTime:       rt.depart,
		ArrivalTime:         rt.arrive,
		Duration:            Duration{Text: rt.duration},
		DepartureAirportLat: from.lat,
		DepartureAirportLng: from.lng,
		ArrivalAirportLat:   to.lat,
		ArrivalAirportLng:   to.lng,
	}
}
