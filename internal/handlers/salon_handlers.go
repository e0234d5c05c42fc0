package handlers

import (
	"net/http"

	"rentmart/internal/common"
	"rentmart/internal/models"
	"rentmart/internal/services"

	"github.com/labstack/echo/v4"
)

type SalonHandlers struct {
	salonService services.SalonService
}

func NewSalonHandlers(salonService services.SalonService) *SalonHandlers {
	return &SalonHandlers{salonService: salonService}
}

type salonEventRequest struct {
	CustomerName  string  `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	EventDate     string  `json:"event_date"`
	StartTime     string  `json:"start_time"`
	EventType     *string `json:"event_type"`
	GuestCount    *int    `json:"guest_count"`
	Price         float64 `json:"price"`
	Paid          bool    `json:"paid"`
	Deposit       float64 `json:"deposit"`
	Conditions    *string `json:"conditions"`
	Notes         *string `json:"notes"`
}

func (h *SalonHandlers) bindEvent(c echo.Context) (*models.SalonEvent, error) {
	var req salonEventRequest
	if err := c.Bind(&req); err != nil {
		return nil, common.SendClientError(c, "Invalid request body")
	}
	if err := common.ValidateRequiredString(req.CustomerName, "customer name", 200); err != nil {
		return nil, common.SendValidationError(c, "customer_name", err.Error())
	}
	eventDate, err := common.ParseEventDate(req.EventDate, "event date")
	if err != nil {
		return nil, common.SendValidationError(c, "event_date", err.Error())
	}
	if err := common.ValidateEventTime(req.StartTime, "start time"); err != nil {
		return nil, common.SendValidationError(c, "start_time", err.Error())
	}

	return &models.SalonEvent{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		EventDate:     eventDate,
		StartTime:     req.StartTime,
		EventType:     req.EventType,
		GuestCount:    req.GuestCount,
		Price:         req.Price,
		Paid:          req.Paid,
		Deposit:       req.Deposit,
		Conditions:    req.Conditions,
		Notes:         req.Notes,
	}, nil
}

// CreateEvent handles POST /salon/events
func (h *SalonHandlers) CreateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	event, err := h.bindEvent(c)
	if err != nil {
		return err
	}
	if err := h.salonService.Create(ctx, event); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, event)
}

// GetEvent handles GET /salon/events/:id
func (h *SalonHandlers) GetEvent(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "event id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	event, err := h.salonService.GetByID(ctx, id)
	if err != nil {
		return common.SendNotFoundError(c, "Salon event")
	}
	return c.JSON(http.StatusOK, event)
}

// UpdateEvent handles PUT /salon/events/:id
func (h *SalonHandlers) UpdateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "event id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	existing, err := h.salonService.GetByID(ctx, id)
	if err != nil {
		return common.SendNotFoundError(c, "Salon event")
	}

	event, bindErr := h.bindEvent(c)
	if bindErr != nil {
		return bindErr
	}
	event.ID = id
	event.Status = existing.Status
	if err := h.salonService.Update(ctx, event); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusOK, event)
}

// CancelEvent handles POST /salon/events/:id/cancel
func (h *SalonHandlers) CancelEvent(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "event id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	if err := h.salonService.Cancel(ctx, id); err != nil {
		return common.SendConflictError(c, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// CompleteEvent handles POST /salon/events/:id/complete
func (h *SalonHandlers) CompleteEvent(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "event id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	if err := h.salonService.Complete(ctx, id); err != nil {
		return common.SendConflictError(c, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteEvent handles DELETE /salon/events/:id
func (h *SalonHandlers) DeleteEvent(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "event id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	if err := h.salonService.Delete(ctx, id); err != nil {
		return common.SendServerError(c, "Failed to delete salon event")
	}
	return c.NoContent(http.StatusNoContent)
}

// ListEvents handles GET /salon/events?limit=&offset=
func (h *SalonHandlers) ListEvents(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset := parsePagination(c)
	events, err := h.salonService.List(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list salon events")
	}
	return c.JSON(http.StatusOK, events)
}

// ListEventsForDate handles GET /salon/events/date/:date
func (h *SalonHandlers) ListEventsForDate(c echo.Context) error {
	ctx := c.Request().Context()

	date, err := common.ParseEventDate(c.Param("date"), "date")
	if err != nil {
		return common.SendValidationError(c, "date", err.Error())
	}
	events, err := h.salonService.ListForDate(ctx, date)
	if err != nil {
		return common.SendServerError(c, "Failed to list salon events")
	}
	return c.JSON(http.StatusOK, events)
}
