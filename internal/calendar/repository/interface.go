package repository

import (
	"context"

	"smart-daily-planner/internal/model"
)

// EventRepository fetches the raw calendar records for one date.
type EventRepository interface {
	ListEvents(ctx context.Context, date model.Date) ([]model.RawEvent, error)
}
