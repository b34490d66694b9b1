package usecase

import (
	"fmt"
	"sort"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
)

// validate enforces the plan document invariants before it is emitted.
// Every violation found is collected, so the caller can report all problems
// from a single run.
func validate(doc model.DailyPlan) error {
	var violations []string

	if doc.Date.IsZero() {
		violations = append(violations, "date is not a well-formed calendar date")
	}

	for i, item := range doc.Plan {
		if !item.ItemType.Valid() {
			violations = append(violations, fmt.Sprintf("item %d: unknown item type %q", i, item.ItemType))
			continue
		}
		if reason := checkDetailsShape(item); reason != "" {
			violations = append(violations, fmt.Sprintf("item %d: %s", i, reason))
		}
		if reason := checkPriorityInvariant(item); reason != "" {
			violations = append(violations, fmt.Sprintf("item %d: %s", i, reason))
		}
	}

	// Ordering is re-derived rather than trusted: sort a copy and compare,
	// so a future refactor of the assembler cannot silently break the
	// contract.
	if reason := checkOrdering(doc.Plan); reason != "" {
		violations = append(violations, reason)
	}

	if len(violations) > 0 {
		return &plan.ValidationError{Violations: violations}
	}
	return nil
}

// checkDetailsShape verifies that an item's details payload structurally
// matches its declared type.
func checkDetailsShape(item model.PlanItem) string {
	switch item.ItemType {
	case model.ItemTypeEvent:
		if _, ok := item.Details.(model.EventDetails); !ok {
			return "event item carries non-event details"
		}
	case model.ItemTypeTask:
		if _, ok := item.Details.(model.TaskDetails); !ok {
			return "task item carries non-task details"
		}
	case model.ItemTypeRecommendation:
		if _, ok := item.Details.(model.RecommendationDetails); !ok {
			return "recommendation item carries non-recommendation details"
		}
	}
	return ""
}

// checkPriorityInvariant verifies priority is set if and only if the item is
// a task.
func checkPriorityInvariant(item model.PlanItem) string {
	if item.ItemType == model.ItemTypeTask {
		if item.Priority == nil {
			return "task item has no priority"
		}
		if !item.Priority.Valid() {
			return fmt.Sprintf("task item has invalid priority %q", *item.Priority)
		}
		return ""
	}
	if item.Priority != nil {
		return fmt.Sprintf("%s item carries a priority", item.ItemType)
	}
	return ""
}

// checkOrdering verifies the sequence matches the assembler's contract.
func checkOrdering(items []model.PlanItem) string {
	expected := make([]model.PlanItem, len(items))
	copy(expected, items)
	sort.SliceStable(expected, func(i, j int) bool {
		if expected[i].Time.Seconds() != expected[j].Time.Seconds() {
			return expected[i].Time.Seconds() < expected[j].Time.Seconds()
		}
		return expected[i].ItemType.Precedence() < expected[j].ItemType.Precedence()
	})

	for i := range items {
		if items[i].Time != expected[i].Time || items[i].ItemType != expected[i].ItemType {
			return fmt.Sprintf("plan sequence out of order at index %d", i)
		}
	}
	return ""
}
