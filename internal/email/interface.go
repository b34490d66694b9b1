package email

import (
	"context"

	"smart-daily-planner/internal/model"
)

// UseCase defines the business logic interface for the email domain.
type UseCase interface {
	// Tasks extracts prioritized tasks from recent emails. This is the plan
	// engine's task producer.
	Tasks(ctx context.Context) ([]model.RawTask, error)
}
