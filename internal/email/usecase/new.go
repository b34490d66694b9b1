package usecase

import (
	"smart-daily-planner/internal/email/repository"
	pkgLog "smart-daily-planner/pkg/log"
)

// DefaultEmailLimit caps how many recent emails are scanned per run.
const DefaultEmailLimit = 20

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.EmailRepository
	limit int
}

// New creates a new email UseCase instance.
func New(l pkgLog.Logger, repo repository.EmailRepository, limit int) *implUseCase {
	if limit <= 0 {
		limit = DefaultEmailLimit
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		limit: limit,
	}
}
