package model

import "time"

// RecommendationKind distinguishes recommendation payloads.
type RecommendationKind string

const (
	RecommendationWeather RecommendationKind = "weather"
	RecommendationTraffic RecommendationKind = "traffic"
)

// Valid reports whether k is a known recommendation kind.
func (k RecommendationKind) Valid() bool {
	return k == RecommendationWeather || k == RecommendationTraffic
}

// Impact labels recognized by the plan normalizer.
const (
	ImpactMorning = "morning"
	ImpactCommute = "commute"
	ImpactTraffic = "traffic"
)

// TrafficCondition is a coarse traffic severity level.
type TrafficCondition string

const (
	TrafficLight    TrafficCondition = "light"
	TrafficModerate TrafficCondition = "moderate"
	TrafficHeavy    TrafficCondition = "heavy"
	TrafficSevere   TrafficCondition = "severe"
)

// RawEvent is a calendar record as supplied by the calendar collaborator.
// A zero Start means the record is malformed.
type RawEvent struct {
	Start    time.Time
	End      time.Time
	Summary  string
	Location string
}

// RawTask is an email-derived task record as supplied by the email
// collaborator.
type RawTask struct {
	Description   string
	Priority      Priority
	DueDate       *Date
	SourceEmailID string
}

// RawRecommendation is a contextual record as supplied by the context
// collaborator. Detail is an opaque kind-specific payload; ImpactLabel is a
// free-form hint ("morning", "commute") used to place the item in the plan.
type RawRecommendation struct {
	Kind        RecommendationKind
	Detail      any
	ImpactLabel string
}

// WeatherDetail is the detail payload of a weather recommendation.
type WeatherDetail struct {
	Description        string     `json:"description"`
	TemperatureCelsius *float64   `json:"temperature_celsius,omitempty"`
	Location           string     `json:"location,omitempty"`
	ObservedAt         *time.Time `json:"observed_at,omitempty"`
}

// TrafficDetail is the detail payload of a traffic recommendation.
type TrafficDetail struct {
	RouteDescription string           `json:"route_description"`
	DelayMinutes     int              `json:"delay_minutes"`
	Condition        TrafficCondition `json:"condition"`
	Recommendation   string           `json:"recommendation,omitempty"`
}

// Email is a raw email message used for task extraction.
type Email struct {
	ID         string    `json:"id"`
	Sender     string    `json:"sender"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	ReceivedAt time.Time `json:"received_date"`
}
