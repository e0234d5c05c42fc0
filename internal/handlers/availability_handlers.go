package handlers

import (
	"log"
	"net/http"

	"rentmart/internal/common"
	"rentmart/internal/models"
	"rentmart/internal/services"

	"github.com/labstack/echo/v4"
)

type AvailabilityHandlers struct {
	availabilityService services.AvailabilityService
}

func NewAvailabilityHandlers(availabilityService services.AvailabilityService) *AvailabilityHandlers {
	return &AvailabilityHandlers{availabilityService: availabilityService}
}

type AvailabilityResponse struct {
	Date     string                         `json:"date"`
	Products []*models.AvailabilitySnapshot `json:"products"`

	// Degraded is set when the order lookup failed and stock is reported
	// without netting out committed units.
	Degraded bool `json:"degraded"`
}

// GetAvailability handles GET /availability?date=YYYY-MM-DD
func (h *AvailabilityHandlers) GetAvailability(c echo.Context) error {
	ctx := c.Request().Context()

	date, err := common.ParseEventDate(c.QueryParam("date"), "date")
	if err != nil {
		return common.SendValidationError(c, "date", err.Error())
	}

	snapshots, err := h.availabilityService.ComputeAvailability(ctx, date)
	if err != nil {
		log.Printf("WARN: availability computation failed for %s, falling back to full stock: %v", date.Format("2006-01-02"), err)
		fallback, fbErr := h.availabilityService.FallbackAvailability(ctx)
		if fbErr != nil {
			log.Printf("ERROR: availability fallback also failed: %v", fbErr)
			return c.JSON(http.StatusOK, &AvailabilityResponse{
				Date:     date.Format("2006-01-02"),
				Products: []*models.AvailabilitySnapshot{},
				Degraded: true,
			})
		}
		return c.JSON(http.StatusOK, &AvailabilityResponse{
			Date:     date.Format("2006-01-02"),
			Products: fallback,
			Degraded: true,
		})
	}

	return c.JSON(http.StatusOK, &AvailabilityResponse{
		Date:     date.Format("2006-01-02"),
		Products: snapshots,
	})
}
