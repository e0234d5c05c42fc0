package handlers

import (
	"net/http"

	"rentmart/internal/common"
	"rentmart/internal/services"

	"github.com/labstack/echo/v4"
)

type StatsHandlers struct {
	statsService services.StatsService
}

func NewStatsHandlers(statsService services.StatsService) *StatsHandlers {
	return &StatsHandlers{statsService: statsService}
}

// GetSummary handles GET /stats?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *StatsHandlers) GetSummary(c echo.Context) error {
	ctx := c.Request().Context()

	start, err := common.ParseEventDate(c.QueryParam("start"), "start")
	if err != nil {
		return common.SendValidationError(c, "start", err.Error())
	}
	end, err := common.ParseEventDate(c.QueryParam("end"), "end")
	if err != nil {
		return common.SendValidationError(c, "end", err.Error())
	}
	if end.Before(start) {
		return common.SendValidationError(c, "end", "end date cannot precede start date")
	}

	summary, err := h.statsService.Summary(ctx, start, end)
	if err != nil {
		return common.SendServerError(c, "Failed to compute statistics")
	}
	return c.JSON(http.StatusOK, summary)
}
