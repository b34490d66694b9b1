package usecase

import (
	"smart-daily-planner/internal/calendar/repository"
	pkgLog "smart-daily-planner/pkg/log"
)

// Working-day window for free-slot analysis.
const (
	workingDayStartHour = 9
	workingDayEndHour   = 17
	minFreeSlotMinutes  = 15
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.EventRepository
}

// New creates a new calendar UseCase instance.
func New(l pkgLog.Logger, repo repository.EventRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
