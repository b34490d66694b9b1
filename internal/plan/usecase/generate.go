package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
)

// Generate runs one full planning pass: invoke the three producers for the
// target date, then consolidate. A calendar failure aborts the run; email and
// context failures degrade to empty collections so a partial plan is still
// produced.
func (uc *implUseCase) Generate(ctx context.Context, input plan.GenerateInput) (plan.GenerateOutput, error) {
	if input.Date.IsZero() {
		return plan.GenerateOutput{}, plan.ErrMissingDate
	}

	runID := uuid.NewString()
	uc.l.Infof(ctx, "Generate: run=%s date=%s", runID, input.Date)

	if uc.events == nil {
		return plan.GenerateOutput{}, plan.ErrCalendarUnavailable
	}
	events, err := uc.events.Events(ctx, input.Date)
	if err != nil {
		uc.l.Errorf(ctx, "Generate: run=%s calendar producer failed: %v", runID, err)
		return plan.GenerateOutput{}, fmt.Errorf("%w: %v", plan.ErrCalendarUnavailable, err)
	}
	uc.l.Infof(ctx, "Generate: run=%s calendar produced %d events", runID, len(events))

	var tasks []model.RawTask
	if uc.tasks != nil {
		tasks, err = uc.tasks.Tasks(ctx)
		if err != nil {
			uc.l.Warnf(ctx, "Generate: run=%s email producer failed, continuing without tasks: %v", runID, err)
			tasks = nil
		}
	}
	uc.l.Infof(ctx, "Generate: run=%s email produced %d tasks", runID, len(tasks))

	var recommendations []model.RawRecommendation
	if uc.recommendations != nil {
		recommendations, err = uc.recommendations.Recommendations(ctx, input.Date, events)
		if err != nil {
			uc.l.Warnf(ctx, "Generate: run=%s context producer failed, continuing without recommendations: %v", runID, err)
			recommendations = nil
		}
	}
	uc.l.Infof(ctx, "Generate: run=%s context produced %d recommendations", runID, len(recommendations))

	out, err := uc.Consolidate(ctx, plan.ConsolidateInput{
		Date:            input.Date,
		Events:          events,
		Tasks:           tasks,
		Recommendations: recommendations,
	})
	if err != nil {
		return plan.GenerateOutput{}, err
	}

	for _, r := range out.Rejections {
		uc.l.Warnf(ctx, "Generate: run=%s skipped %s record %d: %s", runID, r.Source, r.Index, r.Reason)
	}

	return plan.GenerateOutput{
		RunID:      runID,
		Plan:       out.Plan,
		Rejections: out.Rejections,
	}, nil
}
