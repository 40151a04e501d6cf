package flight

const (
	elAlLogo      = "https://upload.wikimedia.org/wikipedia/commons/thumb/6/68/El_Al_Logo.svg/2560px-El_Al_Logo.svg.png"
	aegeanLogo    = "https://upload.wikimedia.org/wikipedia/commons/thumb/3/36/Aegean_Airlines_Logo.svg/2560px-Aegean_Airlines_Logo.svg.png"
	britishLogo   = "https://upload.wikimedia.org/wikipedia/commons/thumb/4/42/British_Airways_Logo.svg/2560px-British_Airways_Logo.svg.png"
	lufthansaLogo = "https://upload.wikimedia.org/wikipedia/commons/thumb/b/b8/Lufthansa_Logo_2018.svg/2560px-Lufthansa_Logo_2018.svg.png"
)

var (
	telAviv   = Coordinates{Latitude: 32.0, Longitude: 34.8}
	athens    = Coordinates{Latitude: 37.9, Longitude: 23.7}
	london    = Coordinates{Latitude: 51.5, Longitude: -0.45}
	frankfurt = Coordinates{Latitude: 50.0, Longitude: 8.6}
)

// FallbackCatalog returns the fixed demo offers used when the provider is unavailable or
// returns nothing. Legs carry the request's dates; the return leg shows UnknownDate for
// one-way requests.
func FallbackCatalog(req SearchRequest) []FlightOffer {
	outboundDate := req.DepartureDate.String()
	returnDate := UnknownDate
	if req.ReturnDate != nil {
		returnDate = req.ReturnDate.String()
	}

	return []FlightOffer{
		{
			TotalPrice:     price(250),
			AirlineName:    "El Al",
			AirlineLogoURL: elAlLogo,
			Legs: []FlightLeg{
				fallbackLeg("El Al", outboundDate, "08:30 AM", "11:45 AM", "3h 15m", telAviv, athens),
				fallbackLeg("El Al", returnDate, "04:00 PM", "07:20 PM", "3h 20m", athens, telAviv),
			},
		},
		{
			TotalPrice:     price(300),
			AirlineName:    "Aegean Airlines",
			AirlineLogoURL: aegeanLogo,
			Legs: []FlightLeg{
				fallbackLeg("Aegean Airlines", outboundDate, "10:00 AM", "01:10 PM", "3h 10m", telAviv, athens),
				fallbackLeg("Aegean Airlines", returnDate, "06:15 PM", "09:30 PM", "3h 15m", athens, telAviv),
			},
		},
		{
			TotalPrice:     price(420),
			AirlineName:    "British Airways",
			AirlineLogoURL: britishLogo,
			Legs: []FlightLeg{
				fallbackLeg("British Airways", outboundDate, "09:15 AM", "04:20 PM", "5h 05m", london, telAviv),
			},
		},
		{
			TotalPrice:     price(380),
			AirlineName:    "Lufthansa",
			AirlineLogoURL: lufthansaLogo,
			Legs: []FlightLeg{
				fallbackLeg("Lufthansa", outboundDate, "11:40 AM", "04:55 PM", "4h 15m", frankfurt, telAviv),
			},
		},
	}
}

func fallbackLeg(airline, date, departs, arrives, duration string, from, to Coordinates) FlightLeg {
	dep, arr := from, to
	return FlightLeg{
		DepartureDate:        date,
		DepartureTime:        departs,
		ArrivalTime:          arrives,
		DurationText:         duration,
		DepartureCoordinates: &dep,
		ArrivalCoordinates:   &arr,
		AirlineName:          airline,
	}
}

func price(v float64) *float64 {
	return &v
}
