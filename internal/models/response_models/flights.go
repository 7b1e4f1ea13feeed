package response_models

import "encoding/json"

type FlightOption struct {
	Airline       string `json:"airline"`
	Price         Amount `json:"price"`
	Duration      string `json:"duration,omitempty"`
	Type          string `json:"type,omitempty"`
	DepartureTime string `json:"departureTime,omitempty"`

	raw json.RawMessage
}

func (o *FlightOption) UnmarshalJSON(data []byte) error {
	type fields FlightOption
	var view fields
	raw := keepRaw(data, &view)
	*o = FlightOption(view)
	o.raw = raw
	return nil
}

func (o FlightOption) MarshalJSON() ([]byte, error) {
	type fields FlightOption
	return emitRaw(o.raw, fields(o))
}

// FlightInfo is a generated flight quote for a route.
type FlightInfo struct {
	Origin          string         `json:"origin"`
	Destination     string         `json:"destination"`
	Price           *Amount        `json:"price,omitempty"`
	AveragePrice    *Amount        `json:"averagePrice"`
	CheapestFlight  *FlightOption  `json:"cheapestFlight,omitempty"`
	FlightOptions   []FlightOption `json:"flightOptions"`
	Tips            StringList     `json:"tips"`
	RouteType       string         `json:"routeType"`
	BestBookingTime string         `json:"bestBookingTime"`
	Date            *string        `json:"date,omitempty"`
}

// Cost picks the figure used for budgeting: price, then averagePrice, then
// the cheapest option's price, else 0.
func (f *FlightInfo) Cost() float64 {
	switch {
	case f == nil:
		return 0
	case f.Price != nil:
		return f.Price.Float()
	case f.AveragePrice != nil:
		return f.AveragePrice.Float()
	case f.CheapestFlight != nil:
		return f.CheapestFlight.Price.Float()
	}
	return 0
}

type Baggage struct {
	CarryOn         string `json:"carryOn"`
	Checked         string `json:"checked"`
	Extra           string `json:"extra"`
	CabinDimensions string `json:"cabinDimensions"`
}

// LiveFlight is one priced offer from the live flight search.
type LiveFlight struct {
	ID           string          `json:"id"`
	CarrierCode  string          `json:"carrierCode"`
	FlightNumber string          `json:"flightNumber"`
	Departure    string          `json:"departure"`
	Arrival      string          `json:"arrival"`
	Duration     string          `json:"duration"`
	Price        float64         `json:"price"`
	Currency     string          `json:"currency"`
	Stops        int             `json:"stops"`
	AirlineName  string          `json:"airlineName"`
	Baggage      Baggage         `json:"baggage"`
	RawOffer     json.RawMessage `json:"rawOffer,omitempty"`
}

type FlightSearchResult struct {
	Origin         string       `json:"origin"`
	OriginIata     string       `json:"originIata"`
	Destination    string       `json:"destination"`
	DestIata       string       `json:"destIata"`
	SearchDate     string       `json:"searchDate"`
	TotalFlights   int          `json:"totalFlights"`
	AllFlights     []LiveFlight `json:"allFlights"`
	CheapestFlight *LiveFlight  `json:"cheapestFlight"`
	AveragePrice   *float64     `json:"averagePrice"`
}
