package flights

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// maxOffers bounds how many offers are projected for display.
const maxOffers = 5

const unknownAirline = "Unknown Airline"

// Offer is the display-oriented projection of one priced itinerary.
type Offer struct {
	Price    string    `json:"price"`
	Currency string    `json:"currency"`
	TripType string    `json:"trip_type"`
	Token    string    `json:"token"`
	Segments []Segment `json:"segments"`
}

// Segment is one directional part of a trip (outbound or return),
// summarised from its first leg.
type Segment struct {
	Label            string `json:"label"`
	Airline          string `json:"airline"`
	CarrierCode      string `json:"carrier_code"`
	FlightNumber     string `json:"flight_number"`
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	Stops            int    `json:"stops"`
}

// ProjectOffers flattens up to the first five offers of a search response.
// Every nested lookup is guarded with a default, so a sparse response never
// panics the caller.
func ProjectOffers(root gjson.Result) []Offer {
	airlines := airlineDirectory(root)

	var out []Offer
	for i, offer := range root.Get("data.flightOffers").Array() {
		if i >= maxOffers {
			break
		}
		out = append(out, projectOffer(offer, airlines))
	}
	return out
}

// airlineDirectory indexes the aggregation-provided carriers by IATA code.
func airlineDirectory(root gjson.Result) map[string]string {
	dir := make(map[string]string)
	for _, a := range root.Get("data.aggregation.airlines").Array() {
		if code := a.Get("iataCode").String(); code != "" {
			dir[code] = a.Get("name").String()
		}
	}
	return dir
}

func projectOffer(offer gjson.Result, airlines map[string]string) Offer {
	price := offer.Get("priceBreakdown.totalRounded")
	o := Offer{
		Price:    FormatPrice(price),
		Currency: stringOr(price.Get("currencyCode"), "N/A"),
		TripType: stringOr(offer.Get("tripType"), "N/A"),
		Token:    stringOr(offer.Get("token"), "N/A"),
	}

	segments := offer.Get("segments").Array()
	for j, seg := range segments {
		o.Segments = append(o.Segments, projectSegment(seg, j, len(segments), airlines))
	}
	return o
}

func projectSegment(seg gjson.Result, index, total int, airlines map[string]string) Segment {
	label := "RETURN"
	if index == 0 {
		label = "OUTBOUND"
		if total == 1 {
			label = "ONE-WAY"
		}
	}

	legs := seg.Get("legs").Array()
	s := Segment{Label: label}
	if len(legs) == 0 {
		s.Airline = unknownAirline
		s.CarrierCode = "N/A"
		s.FlightNumber = "N/A"
		s.DepartureAirport = "???"
		s.ArrivalAirport = "???"
		s.DepartureTime = "N/A"
		s.ArrivalTime = "N/A"
		return s
	}

	// Only the first leg of a segment is summarised; the rest contribute to
	// the stop count.
	first := legs[0]
	s.CarrierCode = stringOr(first.Get("flightInfo.carrierInfo.marketingCarrier"), "N/A")
	s.Airline = unknownAirline
	if name, ok := airlines[s.CarrierCode]; ok {
		s.Airline = name
	}
	s.FlightNumber = stringOr(first.Get("flightInfo.flightNumber"), "N/A")
	s.DepartureAirport = stringOr(first.Get("departureAirport.code"), "???")
	s.ArrivalAirport = stringOr(first.Get("arrivalAirport.code"), "???")
	s.DepartureTime = ClockTime(first.Get("departureTime").String())
	s.ArrivalTime = ClockTime(first.Get("arrivalTime").String())
	s.Stops = len(legs) - 1
	return s
}

// FormatPrice reconstructs a {units, nanos} pair as a fixed-point decimal
// string, e.g. units=123 nanos=40000000 -> "123.040000000". No float
// arithmetic is involved.
func FormatPrice(price gjson.Result) string {
	nanos := price.Get("nanos").Int()
	units := price.Get("units")
	if !units.Exists() {
		return fmt.Sprintf("N/A.%09d", nanos)
	}
	return fmt.Sprintf("%d.%09d", units.Int(), nanos)
}

// ClockTime extracts the HH:MM portion of an ISO-8601-like timestamp by
// fixed offsets rather than a full datetime parse. Timestamps too short to
// carry a clock render as "N/A".
func ClockTime(ts string) string {
	if len(ts) < 16 {
		return "N/A"
	}
	return ts[11:16]
}

// stringOr falls back only when the key is absent; a present empty string
// is kept as-is.
func stringOr(v gjson.Result, fallback string) string {
	if !v.Exists() {
		return fallback
	}
	return v.String()
}
