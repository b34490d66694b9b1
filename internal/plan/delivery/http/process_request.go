package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/model"
)

// processGetReq parses and validates the date path parameter.
func (h *handler) processGetReq(c *gin.Context) (getReq, error) {
	raw := c.Param("date")
	date, err := model.ParseDate(raw)
	if err != nil {
		return getReq{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return getReq{Date: date}, nil
}
