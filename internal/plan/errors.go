package plan

import (
	"errors"
	"fmt"
	"strings"
)

// Domain-specific errors for the plan package.
var (
	ErrCalendarUnavailable = errors.New("calendar producer failed")
	ErrMissingDate         = errors.New("target date is required")
)

// Rejection reasons reported by the normalizer.
const (
	ReasonMissingStartTime = "missing start time"
	ReasonMissingEndTime   = "missing end time"
	ReasonMissingSummary   = "missing summary"
	ReasonMissingDesc      = "missing description"
	ReasonInvalidPriority  = "invalid priority"
	ReasonInvalidRecKind   = "invalid recommendation kind"
	ReasonMissingDetail    = "missing detail payload"
)

// ValidationError aggregates every invariant violation found in an assembled
// plan, so the caller sees all problems at once instead of one per run.
type ValidationError struct {
	Violations []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("plan validation failed: %s", strings.Join(e.Violations, "; "))
}
