package plan

import (
	"context"

	"smart-daily-planner/internal/model"
)

// UseCase defines the business logic interface for the plan domain.
type UseCase interface {
	// Generate invokes the three producers for the target date and
	// consolidates their outputs into a daily plan.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)

	// Consolidate merges already-fetched collaborator outputs into one
	// ordered, validated daily plan. It performs no I/O.
	Consolidate(ctx context.Context, input ConsolidateInput) (ConsolidateOutput, error)
}

// EventProducer supplies calendar events for a date.
type EventProducer interface {
	Events(ctx context.Context, date model.Date) ([]model.RawEvent, error)
}

// TaskProducer supplies email-derived tasks.
type TaskProducer interface {
	Tasks(ctx context.Context) ([]model.RawTask, error)
}

// RecommendationProducer supplies contextual recommendations. The day's
// events are passed in so commute-related recommendations can key off the
// first relevant appointment.
type RecommendationProducer interface {
	Recommendations(ctx context.Context, date model.Date, events []model.RawEvent) ([]model.RawRecommendation, error)
}
