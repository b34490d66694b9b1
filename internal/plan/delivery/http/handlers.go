package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/plan"
	"smart-daily-planner/pkg/response"
)

// Get godoc
// @Summary     Generate the daily plan
// @Description Fetches calendar events, email tasks and contextual recommendations for the date and consolidates them into one ordered plan.
// @Tags        Plan
// @Produce     json
// @Param       date path string true "Target date (YYYY-MM-DD)"
// @Success     200 {object} getResp
// @Failure     400 {object} response.Resp "Bad Request - malformed date"
// @Failure     422 {object} response.Resp "Unprocessable Entity - plan failed validation"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/{date} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)

		var vErr *plan.ValidationError
		if errors.As(err, &vErr) {
			response.UnprocessableEntity(c, vErr, vErr.Violations)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newGetResp(output))
}
