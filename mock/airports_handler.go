package main

import (
	"encoding/json"
	"net/http"
	"strings"
)

type AirportsResponse struct {
	Data []Airport `json:"data"`
}

type Airport struct {
	SkyID        string       `json:"skyId"`
	Presentation Presentation `json:"presentation"`
	Geo          *Geo         `json:"geo,omitempty"`
}

type Presentation struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type Geo struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type airportRecord struct {
	code, name, country string
	lat, lng            float64
}

var airportsByCode = map[string]airportRecord{
	"TLV": {"TLV", "Ben Gurion", "Israel", 32.0, 34.8},
	"ATH": {"ATH", "Athens International", "Greece", 37.9, 23.7},
	"LHR": {"LHR", "London Heathrow", "United Kingdom", 51.5, -0.45},
	"FRA": {"FRA", "Frankfurt am Main", "Germany", 50.0, 8.6},
}

func SearchAirportHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("query")))

	data := make([]Airport, 0)
	for _, a := range airportsByCode {
		if query == "" {
			continue
		}
		if strings.Contains(strings.ToLower(a.name), query) ||
			strings.Contains(strings.ToLower(a.country), query) ||
			strings.EqualFold(a.code, query) {
			data = append(data, toAirport(a))
		}
	}

	json.NewEncoder(w).Encode(AirportsResponse{Data: data})
}

func AirportHandler(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimPrefix(r.URL.Path, apiPrefix+"/airport/"))

	data := make([]Airport, 0)
	if a, ok := airportsByCode[code]; ok {
		data = append(data, toAirport(a))
	}

	json.NewEncoder(w).Encode(AirportsResponse{Data: data})
}

func toAirport(a airportRecord) Airport {
	return Airport{
		SkyID:        a.code,
		Presentation: Presentation{Title: a.name, Subtitle: a.country},
		Geo:          &Geo{Lat: a.lat, Lng: a.lng},
	}
}
