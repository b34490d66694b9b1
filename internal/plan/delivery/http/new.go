package http

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/plan"
	pkgLog "smart-daily-planner/pkg/log"
)

// Handler is the public interface for the plan HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc plan.UseCase
}

// New creates a new HTTP handler for the plan domain.
func New(l pkgLog.Logger, uc plan.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
