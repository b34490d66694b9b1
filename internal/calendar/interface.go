package calendar

import (
	"context"

	"smart-daily-planner/internal/model"
)

// UseCase defines the business logic interface for the calendar domain.
type UseCase interface {
	// Events returns the day's timed events sorted by start time. This is
	// the plan engine's event producer.
	Events(ctx context.Context, date model.Date) ([]model.RawEvent, error)

	// Schedule analyzes the day: events plus derived free slots and
	// conflicts.
	Schedule(ctx context.Context, date model.Date) (ScheduleOutput, error)
}
