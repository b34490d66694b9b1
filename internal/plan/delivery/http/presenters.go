package http

import (
	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
)

// --- Request DTOs ---

type getReq struct {
	Date model.Date
}

func (r getReq) toInput() plan.GenerateInput {
	return plan.GenerateInput{Date: r.Date}
}

// --- Response DTOs ---

type rejectionResp struct {
	Source string `json:"source"`
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type getResp struct {
	RunID      string           `json:"run_id"`
	Date       model.Date       `json:"date"`
	Plan       []model.PlanItem `json:"plan"`
	Summary    string           `json:"summary"`
	Rejections []rejectionResp  `json:"rejections,omitempty"`
}

func (h *handler) newGetResp(out plan.GenerateOutput) getResp {
	rejections := make([]rejectionResp, len(out.Rejections))
	for i, r := range out.Rejections {
		rejections[i] = rejectionResp{
			Source: r.Source,
			Index:  r.Index,
			Reason: r.Reason,
		}
	}
	if len(rejections) == 0 {
		rejections = nil
	}
	return getResp{
		RunID:      out.RunID,
		Date:       out.Plan.Date,
		Plan:       out.Plan.Plan,
		Summary:    out.Plan.Summary,
		Rejections: rejections,
	}
}
