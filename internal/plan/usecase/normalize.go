package usecase

import (
	"strings"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
)

// Fixed placement anchors. Tasks have no inherent time, so they are pinned
// to deterministic blocks; a scheduler that fits tasks into free calendar
// slots is future work.
var (
	earlyWorkBlock   = model.NewTimeOfDay(9, 0, 0)  // urgent and high priority tasks
	catchUpBlock     = model.NewTimeOfDay(14, 0, 0) // everything else
	morningAnchor    = model.NewTimeOfDay(7, 0, 0)  // morning-impact recommendations
	neutralRecAnchor = morningAnchor                // unrecognized impact labels
)

// normalizeEvent maps a raw calendar record onto a plan item placed at the
// event's start time-of-day.
func normalizeEvent(raw model.RawEvent) (model.PlanItem, string) {
	if raw.Start.IsZero() {
		return model.PlanItem{}, plan.ReasonMissingStartTime
	}
	if raw.End.IsZero() {
		return model.PlanItem{}, plan.ReasonMissingEndTime
	}
	if strings.TrimSpace(raw.Summary) == "" {
		return model.PlanItem{}, plan.ReasonMissingSummary
	}

	return model.PlanItem{
		Time:     model.TimeOfDayFrom(raw.Start),
		ItemType: model.ItemTypeEvent,
		Details: model.EventDetails{
			StartTime: raw.Start,
			EndTime:   raw.End,
			Summary:   raw.Summary,
			Location:  raw.Location,
		},
	}, ""
}

// normalizeTask maps a raw email task onto a plan item anchored to the early
// work block for urgent/high priorities and the catch-up block otherwise.
func normalizeTask(raw model.RawTask) (model.PlanItem, string) {
	if strings.TrimSpace(raw.Description) == "" {
		return model.PlanItem{}, plan.ReasonMissingDesc
	}
	if !raw.Priority.Valid() {
		return model.PlanItem{}, plan.ReasonInvalidPriority
	}

	placement := catchUpBlock
	if raw.Priority == model.PriorityUrgent || raw.Priority == model.PriorityHigh {
		placement = earlyWorkBlock
	}

	priority := raw.Priority
	return model.PlanItem{
		Time:     placement,
		ItemType: model.ItemTypeTask,
		Details: model.TaskDetails{
			Description:   raw.Description,
			Priority:      raw.Priority,
			DueDate:       raw.DueDate,
			SourceEmailID: raw.SourceEmailID,
		},
		Priority: &priority,
	}, ""
}

// normalizeRecommendation maps a raw context record onto a plan item placed
// by its impact label. Unrecognized labels fall back to the neutral morning
// anchor rather than being rejected.
func (uc *implUseCase) normalizeRecommendation(date model.Date, raw model.RawRecommendation) (model.PlanItem, string) {
	if !raw.Kind.Valid() {
		return model.PlanItem{}, plan.ReasonInvalidRecKind
	}
	if raw.Detail == nil {
		return model.PlanItem{}, plan.ReasonMissingDetail
	}

	placement := uc.placementForImpact(raw.ImpactLabel)
	day := date.Time()
	impactTime := day.Add(timeOfDayOffset(placement))

	return model.PlanItem{
		Time:     placement,
		ItemType: model.ItemTypeRecommendation,
		Details: model.RecommendationDetails{
			Kind:       raw.Kind,
			Detail:     raw.Detail,
			ImpactTime: impactTime,
		},
	}, ""
}

// placementForImpact resolves an impact label to a placement time.
func (uc *implUseCase) placementForImpact(label string) model.TimeOfDay {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case model.ImpactMorning:
		return morningAnchor
	case model.ImpactCommute, model.ImpactTraffic:
		return model.NewTimeOfDay(uc.cfg.CommuteHour, 0, 0)
	default:
		return neutralRecAnchor
	}
}
