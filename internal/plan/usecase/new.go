package usecase

import (
	"smart-daily-planner/internal/plan"
	pkgLog "smart-daily-planner/pkg/log"
)

// Config holds the placement policy knobs for the consolidation engine.
type Config struct {
	// CommuteHour is the local hour used to place commute-impact
	// recommendations.
	CommuteHour int
}

// DefaultCommuteHour is used when no commute hour is configured.
const DefaultCommuteHour = 8

type implUseCase struct {
	l   pkgLog.Logger
	cfg Config

	events          plan.EventProducer
	tasks           plan.TaskProducer
	recommendations plan.RecommendationProducer
}

// New creates a new plan UseCase instance. Any producer may be nil; Generate
// treats a nil task or recommendation producer as an empty source, while a
// nil event producer aborts the run.
func New(
	l pkgLog.Logger,
	cfg Config,
	events plan.EventProducer,
	tasks plan.TaskProducer,
	recommendations plan.RecommendationProducer,
) *implUseCase {
	if cfg.CommuteHour <= 0 || cfg.CommuteHour > 23 {
		cfg.CommuteHour = DefaultCommuteHour
	}

	return &implUseCase{
		l:               l,
		cfg:             cfg,
		events:          events,
		tasks:           tasks,
		recommendations: recommendations,
	}
}
