package google

import (
	"context"
	"fmt"
	"time"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/gcalendar"
	pkgLog "smart-daily-planner/pkg/log"
)

type implRepository struct {
	l          pkgLog.Logger
	client     *gcalendar.Client
	calendarID string
}

// New creates a Google Calendar backed event repository.
func New(l pkgLog.Logger, client *gcalendar.Client, calendarID string) *implRepository {
	return &implRepository{
		l:          l,
		client:     client,
		calendarID: calendarID,
	}
}

// ListEvents fetches the timed events of the target date from Google
// Calendar.
func (r *implRepository) ListEvents(ctx context.Context, date model.Date) ([]model.RawEvent, error) {
	dayStart := date.Time()
	dayEnd := dayStart.Add(24 * time.Hour)

	events, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    dayStart,
		TimeMax:    dayEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("google calendar list failed: %w", err)
	}

	r.l.Debugf(ctx, "google calendar returned %d events for %s", len(events), date)

	raw := make([]model.RawEvent, 0, len(events))
	for _, e := range events {
		raw = append(raw, model.RawEvent{
			Start:    e.StartTime,
			End:      e.EndTime,
			Summary:  e.Summary,
			Location: e.Location,
		})
	}
	return raw, nil
}
