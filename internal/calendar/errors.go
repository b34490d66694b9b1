package calendar

import "errors"

// Domain-specific errors for the calendar package.
var (
	ErrListEvents = errors.New("failed to list calendar events")
)
