package flight

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// RawInput is the search form as collected from the UI, after passenger clamping.
type RawInput struct {
	Departure     *Airport
	Arrival       *Airport
	DepartureDate string
	ReturnDate    string
	TripType      string
	Adults        int
	Children      int
}

// FormInt decodes a JSON number or numeric string, truncating any fraction toward zero
// ("2.7" is 2). Non-numeric or non-finite input decodes to zero so that the form boundary
// can coerce it instead of rejecting the body.
type FormInt int

func (n *FormInt) UnmarshalJSON(data []byte) error {
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		num = json.Number(strings.TrimSpace(s))
	}

	f, err := strconv.ParseFloat(num.String(), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = FormInt(math.Trunc(max(min(f, math.MaxInt32), math.MinInt32)))
	return nil
}

// SearchForm is the JSON body posted by the search page.
type SearchForm struct {
	Departure     *Airport `json:"departure"`
	Arrival       *Airport `json:"arrival"`
	DepartureDate string   `json:"departure_date"`
	ReturnDate    string   `json:"return_date"`
	TripType      string   `json:"trip_type"`
	Adults        FormInt  `json:"adults"`
	Children      FormInt  `json:"children"`
}

// Input converts the form to builder input, clamping passenger counts to their bounds.
func (f SearchForm) Input() RawInput {
	adults, children := ClampPassengers(int(f.Adults), int(f.Children))
	return RawInput{
		Departure:     f.Departure,
		Arrival:       f.Arrival,
		DepartureDate: f.DepartureDate,
		ReturnDate:    f.ReturnDate,
		TripType:      f.TripType,
		Adults:        adults,
		Children:      children,
	}
}

// ClampPassengers coerces counts to at least one adult and zero children.
func ClampPassengers(adults, children int) (int, int) {
	return max(1, adults), max(0, children)
}

type Builder struct {
	now func() time.Time
}

func NewBuilder(now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{now: now}
}

// Build validates raw input and assembles a SearchRequest. It has no side effects.
func (b *Builder) Build(in RawInput) (SearchRequest, error) {
	if in.Departure == nil {
		return SearchRequest{}, missingField("departure")
	}
	if in.Arrival == nil {
		return SearchRequest{}, missingField("arrival")
	}
	if strings.TrimSpace(in.DepartureDate) == "" {
		return SearchRequest{}, missingField("departure_date")
	}

	tripType, err := parseTripType(in.TripType)
	if err != nil {
		return SearchRequest{}, err
	}

	departureDate, err := ParseDate(in.DepartureDate)
	if err != nil {
		return SearchRequest{}, &ValidationError{Code: ErrorCodeInvalidDate, Field: "departure_date", Msg: err.Error()}
	}
	if departureDate.Before(DateOf(b.now())) {
		return SearchRequest{}, &ValidationError{Code: ErrorCodeDateInPast, Field: "departure_date", Msg: "must not be in the past"}
	}

	var returnDate *Date
	if tripType == RoundTrip {
		if strings.TrimSpace(in.ReturnDate) == "" {
			return SearchRequest{}, missingField("return_date")
		}
		parsed, err := ParseDate(in.ReturnDate)
		if err != nil {
			return SearchRequest{}, &ValidationError{Code: ErrorCodeInvalidDate, Field: "return_date", Msg: err.Error()}
		}
		if parsed.Before(departureDate) {
			return SearchRequest{}, &ValidationError{Code: ErrorCodeInvalidDateRange, Field: "return_date", Msg: "must not precede departure_date"}
		}
		returnDate = &parsed
	}

	if in.Departure.HasCode() && strings.EqualFold(in.Departure.IATACode, in.Arrival.IATACode) {
		return SearchRequest{}, &ValidationError{Code: ErrorCodeSameAirport, Field: "arrival", Msg: "must differ from departure"}
	}

	if in.Adults < 1 {
		return SearchRequest{}, &ValidationError{Code: ErrorCodeInvalidPassenger, Field: "adults", Msg: "must be at least 1"}
	}
	if in.Children < 0 {
		return SearchRequest{}, &ValidationError{Code: ErrorCodeInvalidPassenger, Field: "children", Msg: "must not be negative"}
	}

	return SearchRequest{
		DepartureAirport: *in.Departure,
		ArrivalAirport:   *in.Arrival,
		DepartureDate:    departureDate,
		ReturnDate:       returnDate,
		TripType:         tripType,
		Adults:           in.Adults,
		Children:         in.Children,
	}, nil
}

func parseTripType(value string) (TripType, error) {
	switch TripType(strings.ToLower(strings.TrimSpace(value))) {
	case "", OneWay:
		return OneWay, nil
	case RoundTrip:
		return RoundTrip, nil
	default:
		return "", &ValidationError{Code: ErrorCodeInvalidTripType, Field: "trip_type", Msg: "must be one-way or round-trip"}
	}
}
