package calendar

import (
	"time"

	"smart-daily-planner/internal/model"
)

// FreeSlot is a gap between events inside the working day.
type FreeSlot struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Conflict is a pair of overlapping events.
type Conflict struct {
	Events  [2]model.RawEvent `json:"events"`
	Details string            `json:"details"`
}

// ScheduleOutput is the analyzed day schedule.
type ScheduleOutput struct {
	Date      model.Date       `json:"date"`
	Events    []model.RawEvent `json:"events"`
	FreeSlots []FreeSlot       `json:"free_slots"`
	Conflicts []Conflict       `json:"conflicts"`
}
