package openweather

import (
	"encoding/json"
	"io"
)

// CurrentConditions is the subset of the /weather response the planner uses.
type CurrentConditions struct {
	Weather []Condition `json:"weather"`
	Main    Main        `json:"main"`
	Dt      int64       `json:"dt"`
	Name    string      `json:"name"`
}

// Condition is one weather condition entry.
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// Main carries the temperature block.
type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

func decodeJSON(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}
