package recommendation

import (
	"context"

	"smart-daily-planner/internal/model"
)

// UseCase defines the business logic interface for the recommendation domain.
type UseCase interface {
	// Recommendations builds the contextual recommendations for a date: a
	// morning weather note for the configured home location, plus a commute
	// traffic note when the first mid-morning event has a destination and
	// traffic is worse than light. Failed lookups are logged and skipped.
	Recommendations(ctx context.Context, date model.Date, events []model.RawEvent) ([]model.RawRecommendation, error)
}
