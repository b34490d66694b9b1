package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
)

// Consolidate merges the three collaborator outputs into one ordered,
// validated daily plan. Malformed records are rejected individually and
// reported; they never abort the run. An all-empty input set is valid and
// yields a plan with an empty sequence.
func (uc *implUseCase) Consolidate(ctx context.Context, input plan.ConsolidateInput) (plan.ConsolidateOutput, error) {
	if input.Date.IsZero() {
		return plan.ConsolidateOutput{}, plan.ErrMissingDate
	}

	items, rejections := uc.normalizeAll(input)

	assemble(items)

	doc := model.DailyPlan{
		Date:    input.Date,
		Plan:    items,
		Summary: summarize(input.Date, items),
	}

	if err := validate(doc); err != nil {
		return plan.ConsolidateOutput{}, err
	}

	uc.l.Debugf(ctx, "Consolidate: %d items, %d rejections for %s", len(items), len(rejections), input.Date)

	return plan.ConsolidateOutput{
		Plan:       doc,
		Rejections: rejections,
	}, nil
}

// normalizeAll converts every raw record into a plan item, collecting the
// results in fixed source order (calendar, email, context) so the stable
// sort preserves that order among fully tied items.
func (uc *implUseCase) normalizeAll(input plan.ConsolidateInput) ([]model.PlanItem, []plan.Rejection) {
	items := make([]model.PlanItem, 0, len(input.Events)+len(input.Tasks)+len(input.Recommendations))
	var rejections []plan.Rejection

	for i, raw := range input.Events {
		item, reason := normalizeEvent(raw)
		if reason != "" {
			rejections = append(rejections, plan.Rejection{Source: plan.SourceCalendar, Index: i, Reason: reason})
			continue
		}
		items = append(items, item)
	}

	for i, raw := range input.Tasks {
		item, reason := normalizeTask(raw)
		if reason != "" {
			rejections = append(rejections, plan.Rejection{Source: plan.SourceEmail, Index: i, Reason: reason})
			continue
		}
		items = append(items, item)
	}

	for i, raw := range input.Recommendations {
		item, reason := uc.normalizeRecommendation(input.Date, raw)
		if reason != "" {
			rejections = append(rejections, plan.Rejection{Source: plan.SourceContext, Index: i, Reason: reason})
			continue
		}
		items = append(items, item)
	}

	return items, rejections
}

// assemble orders items by placement time, breaking ties by item-type
// precedence (event < recommendation < task). The sort is stable, so items
// equal on both keys keep their input order.
func assemble(items []model.PlanItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Time.Seconds() != items[j].Time.Seconds() {
			return items[i].Time.Seconds() < items[j].Time.Seconds()
		}
		return items[i].ItemType.Precedence() < items[j].ItemType.Precedence()
	})
}

// summarize derives the one-line plan summary. Pure function of date and
// items; the exact format is part of the output contract.
func summarize(date model.Date, items []model.PlanItem) string {
	var events, tasks, recommendations int
	for _, item := range items {
		switch item.ItemType {
		case model.ItemTypeEvent:
			events++
		case model.ItemTypeTask:
			tasks++
		case model.ItemTypeRecommendation:
			recommendations++
		}
	}

	return fmt.Sprintf("Plan for %s. Events: %d. Tasks: %d. Recommendations: %d.",
		date, events, tasks, recommendations)
}

// timeOfDayOffset converts a time-of-day into a duration from midnight.
func timeOfDayOffset(t model.TimeOfDay) time.Duration {
	return time.Duration(t.Seconds()) * time.Second
}
