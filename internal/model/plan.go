package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Wire formats for plan documents.
const (
	DateFormat      = "2006-01-02"
	TimeOfDayFormat = "15:04:05"
)

// ItemType is the variant discriminant of a plan item.
type ItemType string

const (
	ItemTypeEvent          ItemType = "event"
	ItemTypeTask           ItemType = "task"
	ItemTypeRecommendation ItemType = "recommendation"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeEvent, ItemTypeTask, ItemTypeRecommendation:
		return true
	}
	return false
}

// Precedence is the tie-break rank used when two items share a placement
// time: events first (fixed external commitments), tasks last (synthetic
// times).
func (t ItemType) Precedence() int {
	switch t {
	case ItemTypeEvent:
		return 0
	case ItemTypeRecommendation:
		return 1
	case ItemTypeTask:
		return 2
	}
	return 3
}

// Priority is the task priority level.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

// Rank returns the ordinal of p, lower is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityNormal:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// TimeOfDay is a wall-clock time used purely to place an item within a plan.
// It may differ from any real event time.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// NewTimeOfDay builds a TimeOfDay from clock components.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute, Second: second}
}

// TimeOfDayFrom extracts the local time-of-day from an instant.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s}
}

// Seconds returns the offset from midnight in seconds.
func (t TimeOfDay) Seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Before reports whether t is earlier in the day than o.
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.Seconds() < o.Seconds()
}

// String formats t as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// MarshalJSON implements json.Marshaler for TimeOfDay.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler for TimeOfDay.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(TimeOfDayFormat, s)
	if err != nil {
		return fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	*t = TimeOfDayFrom(parsed)
	return nil
}

// Date is a calendar date that marshals as YYYY-MM-DD.
type Date time.Time

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(t), nil
}

// Time returns the midnight instant of the date.
func (d Date) Time() time.Time { return time.Time(d) }

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return time.Time(d).IsZero() }

// String formats d as YYYY-MM-DD.
func (d Date) String() string { return time.Time(d).Format(DateFormat) }

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler for Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// EventDetails is the payload of an event plan item.
type EventDetails struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Summary   string    `json:"summary"`
	Location  string    `json:"location,omitempty"`
}

// TaskDetails is the payload of a task plan item.
type TaskDetails struct {
	Description   string   `json:"description"`
	Priority      Priority `json:"priority"`
	DueDate       *Date    `json:"due_date,omitempty"`
	SourceEmailID string   `json:"source_email_id"`
}

// RecommendationDetails is the payload of a recommendation plan item.
// Detail carries the kind-specific payload (WeatherDetail or TrafficDetail).
type RecommendationDetails struct {
	Kind       RecommendationKind `json:"kind"`
	Detail     any                `json:"detail"`
	ImpactTime time.Time          `json:"impact_time"`
}

// PlanItem is a single entry in a daily plan. Details holds the
// variant-specific payload matching ItemType; Priority is set only for
// tasks and serializes as null otherwise.
type PlanItem struct {
	Time     TimeOfDay `json:"time"`
	ItemType ItemType  `json:"item_type"`
	Details  any       `json:"details"`
	Priority *Priority `json:"priority"`
}

// DailyPlan is the consolidated plan document for one date. Plan is ordered
// by placement time; Summary is always derived from Plan, never set
// independently.
type DailyPlan struct {
	Date    Date       `json:"date"`
	Plan    []PlanItem `json:"plan"`
	Summary string     `json:"summary"`
}
