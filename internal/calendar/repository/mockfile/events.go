package mockfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"smart-daily-planner/internal/model"
	pkgLog "smart-daily-planner/pkg/log"
)

// record is the on-disk shape of one mock calendar entry. Start and end are
// RFC3339; a missing start is kept as a zero time so the plan engine can
// report the malformed record instead of the loader hiding it.
type record struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Summary  string `json:"summary"`
	Location string `json:"location,omitempty"`
}

type implRepository struct {
	l    pkgLog.Logger
	path string
}

// New creates an event repository backed by a mock JSON fixture file.
func New(l pkgLog.Logger, path string) *implRepository {
	return &implRepository{l: l, path: path}
}

// ListEvents loads the fixture and returns the records whose start falls on
// the target date. Records without a parseable start are passed through with
// a zero start time.
func (r *implRepository) ListEvents(ctx context.Context, date model.Date) ([]model.RawEvent, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock calendar file: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode mock calendar file: %w", err)
	}

	r.l.Debugf(ctx, "loaded %d mock calendar records from %s", len(records), r.path)

	dayStart := date.Time()
	dayEnd := dayStart.Add(24 * time.Hour)

	events := make([]model.RawEvent, 0, len(records))
	for _, rec := range records {
		start, startErr := time.Parse(time.RFC3339, rec.Start)
		end, _ := time.Parse(time.RFC3339, rec.End)

		if startErr == nil {
			local := start.Local()
			if local.Before(dayStart) || !local.Before(dayEnd) {
				continue
			}
		}

		events = append(events, model.RawEvent{
			Start:    start,
			End:      end,
			Summary:  rec.Summary,
			Location: rec.Location,
		})
	}

	return events, nil
}
