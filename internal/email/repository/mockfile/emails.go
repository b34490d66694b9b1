package mockfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"smart-daily-planner/internal/model"
	pkgLog "smart-daily-planner/pkg/log"
)

type implRepository struct {
	l    pkgLog.Logger
	path string
}

// New creates an email repository backed by a mock JSON fixture file.
func New(l pkgLog.Logger, path string) *implRepository {
	return &implRepository{l: l, path: path}
}

// ListEmails loads emails from the fixture, truncated to limit when
// positive.
func (r *implRepository) ListEmails(ctx context.Context, limit int) ([]model.Email, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock email file: %w", err)
	}

	var emails []model.Email
	if err := json.Unmarshal(data, &emails); err != nil {
		return nil, fmt.Errorf("failed to decode mock email file: %w", err)
	}

	r.l.Debugf(ctx, "loaded %d mock emails from %s", len(emails), r.path)

	if limit > 0 && len(emails) > limit {
		emails = emails[:limit]
	}
	return emails, nil
}
