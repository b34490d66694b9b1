package gmail

import (
	"context"
	"fmt"

	"smart-daily-planner/internal/model"
	pkgGmail "smart-daily-planner/pkg/gmail"
	pkgLog "smart-daily-planner/pkg/log"
)

type implRepository struct {
	l      pkgLog.Logger
	client *pkgGmail.Client
}

// New creates a Gmail backed email repository.
func New(l pkgLog.Logger, client *pkgGmail.Client) *implRepository {
	return &implRepository{l: l, client: client}
}

// ListEmails fetches recent messages from Gmail.
func (r *implRepository) ListEmails(ctx context.Context, limit int) ([]model.Email, error) {
	messages, err := r.client.ListRecent(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("gmail list failed: %w", err)
	}

	r.l.Debugf(ctx, "gmail returned %d messages", len(messages))

	emails := make([]model.Email, 0, len(messages))
	for _, m := range messages {
		emails = append(emails, model.Email{
			ID:         m.ID,
			Sender:     m.Sender,
			Subject:    m.Subject,
			Body:       m.Body,
			ReceivedAt: m.ReceivedAt,
		})
	}
	return emails, nil
}
