package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"
)

const apiPrefix = "/api/v1/flights"

// failRate is the share of requests answered with 503, read from MOCK_FAIL_RATE.
var failRate float64

func main() {
	// Default port
	port := "8081"

	// Check if port is provided as command line argument
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	if v := os.Getenv("MOCK_FAIL_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Fatalf("invalid MOCK_FAIL_RATE: %v", err)
		}
		failRate = rate
	}

	http.HandleFunc(apiPrefix+"/searchFlights", withUpstreamBehaviour(SearchFlightsHandler))
	http.HandleFunc(apiPrefix+"/searchAirport", withUpstreamBehaviour(SearchAirportHandler))
	http.HandleFunc(apiPrefix+"/airport/", withUpstreamBehaviour(AirportHandler))
	http.HandleFunc(apiPrefix+"/checkServer", withUpstreamBehaviour(CheckServerHandler))

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Sky Scrapper mock running on port %s...\n", port)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}

// withUpstreamBehaviour rejects requests without an API key, injects latency and
// fails a configurable share of calls so the fallback path can be exercised locally.
func withUpstreamBehaviour(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("X-RapidAPI-Key") == "" {
			http.Error(w, `{"message":"Invalid API key"}`, http.StatusUnauthorized)
			return
		}

		delay := 50 + rand.Intn(51) // 50 to 100ms
		time.Sleep(time.Duration(delay) * time.Millisecond)

		if failRate > 0 && rand.Float64() < failRate {
			http.Error(w, `{"message":"Service unavailable"}`, http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		next(w, r)
	}
}

func CheckServerHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"status":true,"message":"Server is up and running"}`))
}
