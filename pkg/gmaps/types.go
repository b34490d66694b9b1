package gmaps

import (
	"encoding/json"
	"io"
)

// DirectionsRequest is the input for a directions lookup. Origin and
// Destination are addresses or "lat,lng" pairs.
type DirectionsRequest struct {
	Origin      string
	Destination string
}

// Route is the simplified first route of a directions response.
type Route struct {
	Summary                  string
	DurationSeconds          int
	DurationInTrafficSeconds int
}

// DelayMinutes is the traffic-attributable delay, never negative.
func (r Route) DelayMinutes() int {
	delay := r.DurationInTrafficSeconds - r.DurationSeconds
	if delay <= 0 {
		return 0
	}
	return (delay + 30) / 60
}

type directionsResponse struct {
	Status       string     `json:"status"`
	ErrorMessage string     `json:"error_message"`
	Routes       []apiRoute `json:"routes"`
}

type apiRoute struct {
	Summary string   `json:"summary"`
	Legs    []apiLeg `json:"legs"`
}

type apiLeg struct {
	Duration          apiValue  `json:"duration"`
	DurationInTraffic *apiValue `json:"duration_in_traffic"`
}

type apiValue struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}

func decodeJSON(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}
