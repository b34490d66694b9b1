package repository

import (
	"context"

	"smart-daily-planner/internal/model"
)

// EmailRepository fetches recent raw emails for task extraction.
type EmailRepository interface {
	ListEmails(ctx context.Context, limit int) ([]model.Email, error)
}
