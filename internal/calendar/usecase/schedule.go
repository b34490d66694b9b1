package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"smart-daily-planner/internal/calendar"
	"smart-daily-planner/internal/model"
)

// Events returns the day's events sorted by start time. Records with a zero
// start (malformed fixtures) sort first and are left for the plan engine to
// reject and report.
func (uc *implUseCase) Events(ctx context.Context, date model.Date) ([]model.RawEvent, error) {
	events, err := uc.repo.ListEvents(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", calendar.ErrListEvents, err)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	uc.l.Infof(ctx, "calendar: %d events for %s", len(events), date)
	return events, nil
}

// Schedule analyzes the target date: free slots inside the working day and
// pairwise overlap conflicts.
func (uc *implUseCase) Schedule(ctx context.Context, date model.Date) (calendar.ScheduleOutput, error) {
	events, err := uc.Events(ctx, date)
	if err != nil {
		return calendar.ScheduleOutput{}, err
	}

	timed := make([]model.RawEvent, 0, len(events))
	for _, e := range events {
		if !e.Start.IsZero() && !e.End.IsZero() {
			timed = append(timed, e)
		}
	}

	out := calendar.ScheduleOutput{
		Date:      date,
		Events:    events,
		FreeSlots: freeSlots(date, timed),
		Conflicts: conflicts(timed),
	}

	uc.l.Infof(ctx, "calendar: %s has %d free slots and %d conflicts", date, len(out.FreeSlots), len(out.Conflicts))
	return out, nil
}

// freeSlots walks the sorted events and collects the gaps of at least
// minFreeSlotMinutes inside the working day window.
func freeSlots(date model.Date, events []model.RawEvent) []calendar.FreeSlot {
	day := date.Time()
	dayStart := day.Add(workingDayStartHour * time.Hour)
	dayEnd := day.Add(workingDayEndHour * time.Hour)

	var slots []calendar.FreeSlot
	current := dayStart

	for _, e := range events {
		start := e.Start
		if start.After(dayEnd) {
			break
		}
		if start.After(current) {
			clamped := start
			if clamped.After(dayEnd) {
				clamped = dayEnd
			}
			appendSlot(&slots, current, clamped)
		}
		if e.End.After(current) {
			current = e.End
		}
	}

	if current.Before(dayEnd) {
		appendSlot(&slots, current, dayEnd)
	}

	return slots
}

func appendSlot(slots *[]calendar.FreeSlot, start, end time.Time) {
	duration := end.Sub(start)
	if duration < minFreeSlotMinutes*time.Minute {
		return
	}
	*slots = append(*slots, calendar.FreeSlot{
		Start:           start,
		End:             end,
		DurationMinutes: int(duration.Minutes()),
	})
}

// conflicts reports every overlapping event pair once.
func conflicts(events []model.RawEvent) []calendar.Conflict {
	var found []calendar.Conflict
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			a, b := events[i], events[j]
			if a.Start.Before(b.End) && b.Start.Before(a.End) {
				found = append(found, calendar.Conflict{
					Events: [2]model.RawEvent{a, b},
					Details: fmt.Sprintf("Overlap between %q (%s-%s) and %q (%s-%s)",
						a.Summary, a.Start.Format("15:04"), a.End.Format("15:04"),
						b.Summary, b.Start.Format("15:04"), b.End.Format("15:04")),
				})
			}
		}
	}
	return found
}
