package handlers

import (
	"net/http"

	"rentmart/internal/common"
	"rentmart/internal/models"
	"rentmart/internal/services"

	"github.com/labstack/echo/v4"
)

type VenueHandlers struct {
	venueService services.VenueService
}

func NewVenueHandlers(venueService services.VenueService) *VenueHandlers {
	return &VenueHandlers{venueService: venueService}
}

// ListVenues handles GET /venues
func (h *VenueHandlers) ListVenues(c echo.Context) error {
	ctx := c.Request().Context()

	venues, err := h.venueService.ListActive(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to list venues")
	}
	return c.JSON(http.StatusOK, venues)
}

// CreateVenue handles POST /venues
func (h *VenueHandlers) CreateVenue(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name     string `json:"name"`
		Position int    `json:"position"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := common.ValidateRequiredString(req.Name, "name", 200); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}

	venue := &models.Venue{Name: req.Name, Position: req.Position}
	if err := h.venueService.Create(ctx, venue); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, venue)
}

// DeleteVenue handles DELETE /venues/:id
func (h *VenueHandlers) DeleteVenue(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "venue id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	if err := h.venueService.Delete(ctx, id); err != nil {
		return common.SendServerError(c, "Failed to delete venue")
	}
	return c.NoContent(http.StatusNoContent)
}
