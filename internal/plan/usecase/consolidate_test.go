package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
	"smart-daily-planner/internal/plan/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)   {}

func newEngine() plan.UseCase {
	return usecase.New(&mockLogger{}, usecase.Config{CommuteHour: 8}, nil, nil, nil)
}

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestConsolidateMixedSources(t *testing.T) {
	uc := newEngine()
	date := mustDate(t, "2025-03-10")
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local)

	out, err := uc.Consolidate(context.Background(), plan.ConsolidateInput{
		Date: date,
		Events: []model.RawEvent{
			{Start: start, End: start.Add(time.Hour), Summary: "Team sync"},
		},
		Tasks: []model.RawTask{
			{Description: "Finish report", Priority: model.PriorityUrgent, SourceEmailID: "em-1"},
		},
		Recommendations: []model.RawRecommendation{
			{Kind: model.RecommendationWeather, Detail: model.WeatherDetail{Description: "Rain expected"}, ImpactLabel: "morning"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Rejections) != 0 {
		t.Errorf("expected no rejections, got %v", out.Rejections)
	}
	if len(out.Plan.Plan) != 3 {
		t.Fatalf("expected 3 items, got %d", len(out.Plan.Plan))
	}

	wantOrder := []struct {
		itemType model.ItemType
		time     string
	}{
		{model.ItemTypeRecommendation, "07:00:00"},
		{model.ItemTypeTask, "09:00:00"},
		{model.ItemTypeEvent, "10:00:00"},
	}
	for i, want := range wantOrder {
		got := out.Plan.Plan[i]
		if got.ItemType != want.itemType {
			t.Errorf("item %d: expected type %s, got %s", i, want.itemType, got.ItemType)
		}
		if got.Time.String() != want.time {
			t.Errorf("item %d: expected time %s, got %s", i, want.time, got.Time)
		}
	}

	wantSummary := "Plan for 2025-03-10. Events: 1. Tasks: 1. Recommendations: 1."
	if out.Plan.Summary != wantSummary {
		t.Errorf("summary mismatch:\n  want %q\n  got  %q", wantSummary, out.Plan.Summary)
	}
}

func TestConsolidateEmptyInputs(t *testing.T) {
	uc := newEngine()
	date := mustDate(t, "2025-03-11")

	out, err := uc.Consolidate(context.Background(), plan.ConsolidateInput{Date: date})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Plan.Plan) != 0 {
		t.Errorf("expected empty plan, got %d items", len(out.Plan.Plan))
	}
	want := "Plan for 2025-03-11. Events: 0. Tasks: 0. Recommendations: 0."
	if out.Plan.Summary != want {
		t.Errorf("expected %q, got %q", want, out.Plan.Summary)
	}
}

func TestConsolidateTaskPlacement(t *testing.T) {
	uc := newEngine()
	date := mustDate(t, "2025-03-12")

	out, err := uc.Consolidate(context.Background(), plan.ConsolidateInput{
		Date: date,
		Tasks: []model.RawTask{
			{Description: "Review budget", Priority: model.PriorityNormal, SourceEmailID: "em-2"},
			{Description: "Review budget", Priority: model.PriorityUrgent, SourceEmailID: "em-3"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Plan.Plan) != 2 {
		t.Fatalf("expected 2 items, got %d", len(out.Plan.Plan))
	}

	// Urgent task lands in the early work block, before the catch-up block.
	first, second := out.Plan.Plan[0], out.Plan.Plan[1]
	if first.Time.String() != "09:00:00" || *first.Priority != model.PriorityUrgent {
		t.Errorf("expected urgent task at 09:00:00 first, got %s %v", first.Time, first.Priority)
	}
	if second.Time.String() != "14:00:00" || *second.Priority != model.PriorityNormal {
		t.Errorf("expected normal task at 14:00:00 second, got %s %v", second.Time, second.Priority)
	}
}

func TestConsolidateSkipsMalformedRecords(t *testing.T) {
	uc := newEngine()
	date := mustDate(t, "2025-03-13")
	start := time.Date(2025, 3, 13, 9, 30, 0, 0, time.Local)

	tests := []struct {
		name       string
		input      plan.ConsolidateInput
		wantItems  int
		wantSource string
		wantReason string
	}{
		{
			name: "event missing start",
			input: plan.ConsolidateInput{
				Date: date,
				Events: []model.RawEvent{
					{End: start.Add(time.Hour), Summary: "Broken"},
					{Start: start, End: start.Add(time.Hour), Summary: "Valid"},
				},
			},
			wantItems:  1,
			wantSource: plan.SourceCalendar,
			wantReason: "missing start time",
		},
		{
			name: "task missing description",
			input: plan.ConsolidateInput{
				Date:  date,
				Tasks: []model.RawTask{{Priority: model.PriorityLow, SourceEmailID: "em-4"}},
			},
			wantItems:  0,
			wantSource: plan.SourceEmail,
			wantReason: "missing description",
		},
		{
			name: "task invalid priority",
			input: plan.ConsolidateInput{
				Date:  date,
				Tasks: []model.RawTask{{Description: "Do it", Priority: "someday"}},
			},
			wantItems:  0,
			wantSource: plan.SourceEmail,
			wantReason: "invalid priority",
		},
		{
			name: "recommendation invalid kind",
			input: plan.ConsolidateInput{
				Date:            date,
				Recommendations: []model.RawRecommendation{{Kind: "astrology", Detail: "stars", ImpactLabel: "morning"}},
			},
			wantItems:  0,
			wantSource: plan.SourceContext,
			wantReason: "invalid recommendation kind",
		},
		{
			name: "recommendation missing detail",
			input: plan.ConsolidateInput{
				Date:            date,
				Recommendations: []model.RawRecommendation{{Kind: model.RecommendationWeather, ImpactLabel: "morning"}},
			},
			wantItems:  0,
			wantSource: plan.SourceContext,
			wantReason: "missing detail payload",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := uc.Consolidate(context.Background(), tc.input)
			if err != nil {
				t.Fatalf("run must not abort on a malformed record: %v", err)
			}
			if len(out.Plan.Plan) != tc.wantItems {
				t.Errorf("expected %d items, got %d", tc.wantItems, len(out.Plan.Plan))
			}
			if len(out.Rejections) != 1 {
				t.Fatalf("expected 1 rejection, got %d", len(out.Rejections))
			}
			r := out.Rejections[0]
			if r.Source != tc.wantSource || r.Reason != tc.wantReason {
				t.Errorf("expected rejection %s/%s, got %s/%s", tc.wantSource, tc.wantReason, r.Source, r.Reason)
			}
		})
	}
}

func TestConsolidateTieBreakPrecedence(t *testing.T) {
	uc := usecase.New(&mockLogger{}, usecase.Config{CommuteHour: 9}, nil, nil, nil)
	date := mustDate(t, "2025-03-14")
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)

	// All three land on 09:00:00: event by start time, task by priority
	// anchor, recommendation by commute hour.
	out, err := uc.Consolidate(context.Background(), plan.ConsolidateInput{
		Date: date,
		Events: []model.RawEvent{
			{Start: start, End: start.Add(time.Hour), Summary: "Standup"},
		},
		Tasks: []model.RawTask{
			{Description: "Prep slides", Priority: model.PriorityHigh, SourceEmailID: "em-5"},
		},
		Recommendations: []model.RawRecommendation{
			{Kind: model.RecommendationTraffic, Detail: model.TrafficDetail{Condition: model.TrafficHeavy}, ImpactLabel: "commute"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []model.ItemType{model.ItemTypeEvent, model.ItemTypeRecommendation, model.ItemTypeTask}
	for i, itemType := range want {
		if out.Plan.Plan[i].ItemType != itemType {
			t.Errorf("position %d: expected %s, got %s", i, itemType, out.Plan.Plan[i].ItemType)
		}
	}
}

func TestConsolidateUnknownImpactLabelFallsBack(t *testing.T) {
	uc := newEngine()
	date := mustDate(t, "2025-03-15")

	out, err := uc.Consolidate(context.Background(), plan.ConsolidateInput{
		Date: date,
		Recommendations: []model.RawRecommendation{
			{Kind: model.RecommendationWeather, Detail: model.WeatherDetail{Description: "Clear"}, ImpactLabel: "midnight-snack"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Plan.Plan) != 1 {
		t.Fatalf("unrecognized impact label must not reject the record")
	}
	if got := out.Plan.Plan[0].Time.String(); got != "07:00:00" {
		t.Errorf("expected neutral default 07:00:00, got %s", got)
	}
}

func TestConsolidateOrderingAndCountProperties(t *testing.T) {
	uc := newEngine()
	date := mustDate(t, "2025-03-16")
	day := date.Time()

	input := plan.ConsolidateInput{
		Date: date,
		Events: []model.RawEvent{
			{Start: day.Add(16 * time.Hour), End: day.Add(17 * time.Hour), Summary: "Review"},
			{Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour), Summary: "Standup"},
			{Start: day.Add(11*time.Hour + 30*time.Minute), End: day.Add(12 * time.Hour), Summary: "1:1"},
		},
		Tasks: []model.RawTask{
			{Description: "Pay invoice", Priority: model.PriorityHigh, SourceEmailID: "em-6"},
			{Description: "Read newsletter", Priority: model.PriorityLow, SourceEmailID: "em-7"},
		},
		Recommendations: []model.RawRecommendation{
			{Kind: model.RecommendationWeather, Detail: model.WeatherDetail{Description: "Snow"}, ImpactLabel: "morning"},
			{Kind: model.RecommendationTraffic, Detail: model.TrafficDetail{Condition: model.TrafficModerate}, ImpactLabel: "commute"},
		},
	}

	out, err := uc.Consolidate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := out.Plan.Plan
	if len(items) != 7 {
		t.Fatalf("expected 7 items, got %d", len(items))
	}

	var events, tasks, recs int
	for i, item := range items {
		switch item.ItemType {
		case model.ItemTypeEvent:
			events++
		case model.ItemTypeTask:
			tasks++
		case model.ItemTypeRecommendation:
			recs++
		}
		if i == 0 {
			continue
		}
		prev := items[i-1]
		if item.Time.Before(prev.Time) {
			t.Errorf("ordering violated at %d: %s after %s", i, item.Time, prev.Time)
		}
		if prev.Time == item.Time && prev.ItemType.Precedence() > item.ItemType.Precedence() {
			t.Errorf("precedence violated at %d: %s before %s", i, prev.ItemType, item.ItemType)
		}
	}
	if events != 3 || tasks != 2 || recs != 2 {
		t.Errorf("count property violated: %d/%d/%d", events, tasks, recs)
	}
	if out.Plan.Summary != "Plan for 2025-03-16. Events: 3. Tasks: 2. Recommendations: 2." {
		t.Errorf("unexpected summary %q", out.Plan.Summary)
	}
}

func TestConsolidateStability(t *testing.T) {
	uc := newEngine()
	date := mustDate(t, "2025-03-17")
	day := date.Time()

	input := plan.ConsolidateInput{
		Date: date,
		Events: []model.RawEvent{
			{Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour), Summary: "A"},
			{Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour), Summary: "B"},
		},
		Tasks: []model.RawTask{
			{Description: "T1", Priority: model.PriorityUrgent, SourceEmailID: "em-8"},
			{Description: "T2", Priority: model.PriorityHigh, SourceEmailID: "em-9"},
		},
	}

	first, err := uc.Consolidate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Consolidate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := json.Marshal(first.Plan)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	b, err := json.Marshal(second.Plan)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("re-running consolidation changed the output:\n%s\n%s", a, b)
	}

	// Equal keys preserve input order: event A before B, task T1 before T2.
	events := first.Plan.Plan[:2]
	if events[0].Details.(model.EventDetails).Summary != "A" {
		t.Errorf("stable order violated for tied events")
	}
	tasks := first.Plan.Plan[2:]
	if tasks[0].Details.(model.TaskDetails).Description != "T1" {
		t.Errorf("stable order violated for tied tasks")
	}
}

func TestConsolidateMissingDate(t *testing.T) {
	uc := newEngine()
	_, err := uc.Consolidate(context.Background(), plan.ConsolidateInput{})
	if err != plan.ErrMissingDate {
		t.Errorf("expected ErrMissingDate, got %v", err)
	}
}
