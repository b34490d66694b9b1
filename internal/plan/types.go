package plan

import "smart-daily-planner/internal/model"

// Record sources, used in rejection reports.
const (
	SourceCalendar = "calendar"
	SourceEmail    = "email"
	SourceContext  = "context"
)

// GenerateInput is the input for a full planning run.
type GenerateInput struct {
	Date model.Date
}

// GenerateOutput is the result of a full planning run.
type GenerateOutput struct {
	RunID      string          `json:"run_id"`
	Plan       model.DailyPlan `json:"plan"`
	Rejections []Rejection     `json:"rejections,omitempty"`
}

// ConsolidateInput carries the already-fetched collaborator outputs for one
// target date. Slice order is preserved as the stable tie-break order:
// calendar records, then email records, then context records.
type ConsolidateInput struct {
	Date            model.Date
	Events          []model.RawEvent
	Tasks           []model.RawTask
	Recommendations []model.RawRecommendation
}

// ConsolidateOutput is the consolidated plan plus per-record rejection
// metadata. Rejections never abort the run; they are surfaced alongside the
// plan so no skipped record goes unreported.
type ConsolidateOutput struct {
	Plan       model.DailyPlan `json:"plan"`
	Rejections []Rejection     `json:"rejections,omitempty"`
}

// Rejection reports one raw record that failed normalization.
type Rejection struct {
	Source string `json:"source"`
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}
