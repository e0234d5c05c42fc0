package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"rentmart/internal/common"
	"rentmart/internal/models"
	"rentmart/internal/services"

	"github.com/labstack/echo/v4"
)

type OrderHandlers struct {
	orderService services.OrderService
}

func NewOrderHandlers(orderService services.OrderService) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

type orderLineRequest struct {
	ProductID       string  `json:"product_id"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	Color           *string `json:"color"`
	TableclothColor *string `json:"tablecloth_color"`
	BowColor        *string `json:"bow_color"`
	Size            *string `json:"size"`
}

type orderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerPhone *string            `json:"customer_phone"`
	EventDate     string             `json:"event_date"`
	EventTime     string             `json:"event_time"`
	Venue         string             `json:"venue"`
	VenueDetail   *string            `json:"venue_detail"`
	Comments      *string            `json:"comments"`
	Deposit       float64            `json:"deposit"`
	Paid          bool               `json:"paid"`
	Items         []orderLineRequest `json:"items"`
}

// CreateOrder handles POST /orders. The Idempotency-Key header guards
// against double submission of the same form.
func (h *OrderHandlers) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := common.ValidateRequiredString(req.CustomerName, "customer name", 200); err != nil {
		return common.SendValidationError(c, "customer_name", err.Error())
	}
	eventDate, err := common.ParseEventDate(req.EventDate, "event date")
	if err != nil {
		return common.SendValidationError(c, "event_date", err.Error())
	}
	if err := common.ValidateEventTime(req.EventTime, "event time"); err != nil {
		return common.SendValidationError(c, "event_time", err.Error())
	}
	if err := common.ValidateRequiredString(req.Venue, "venue", 200); err != nil {
		return common.SendValidationError(c, "venue", err.Error())
	}
	if len(req.Items) == 0 {
		return common.SendValidationError(c, "items", "at least one line item is required")
	}

	items := make([]*models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		productID, err := common.ValidateUUID(line.ProductID, "product id")
		if err != nil {
			return common.SendValidationError(c, "product_id", err.Error())
		}
		if err := common.ValidatePositiveInteger(line.Quantity, "quantity", 10000); err != nil {
			return common.SendValidationError(c, "quantity", err.Error())
		}
		items = append(items, &models.OrderItem{
			ProductID:       productID,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			Color:           line.Color,
			TableclothColor: line.TableclothColor,
			BowColor:        line.BowColor,
			Size:            line.Size,
		})
	}

	order := &models.Order{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		EventDate:     eventDate,
		EventTime:     req.EventTime,
		Venue:         req.Venue,
		VenueDetail:   req.VenueDetail,
		Comments:      req.Comments,
		Deposit:       req.Deposit,
		Paid:          req.Paid,
		Items:         items,
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")
	if err := h.orderService.Create(ctx, order, idempotencyKey); err != nil {
		if errors.Is(err, services.ErrDuplicateSubmission) {
			return common.SendConflictError(c, "This order was already submitted")
		}
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, order)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandlers) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	order, err := h.orderService.GetByID(ctx, id)
	if err != nil {
		return common.SendNotFoundError(c, "Order")
	}
	return c.JSON(http.StatusOK, order)
}

// ListOrders handles GET /orders?status=&limit=&offset=
func (h *OrderHandlers) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset := parsePagination(c)
	orders, err := h.orderService.List(ctx, c.QueryParam("status"), limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list orders")
	}
	return c.JSON(http.StatusOK, orders)
}

// ListOrdersForDate handles GET /orders/date/:date
func (h *OrderHandlers) ListOrdersForDate(c echo.Context) error {
	ctx := c.Request().Context()

	date, err := common.ParseEventDate(c.Param("date"), "date")
	if err != nil {
		return common.SendValidationError(c, "date", err.Error())
	}
	orders, err := h.orderService.ListForDate(ctx, date)
	if err != nil {
		return common.SendServerError(c, "Failed to list orders")
	}
	return c.JSON(http.StatusOK, orders)
}

// MarkDelivered handles POST /orders/:id/deliver
func (h *OrderHandlers) MarkDelivered(c echo.Context) error {
	user, ok := common.GetUserFromContext(c.Request().Context())
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	return h.handleTransition(c, h.orderService.MarkDelivered(c.Request().Context(), id, user))
}

// MarkPickedUp handles POST /orders/:id/pickup
func (h *OrderHandlers) MarkPickedUp(c echo.Context) error {
	user, ok := common.GetUserFromContext(c.Request().Context())
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	return h.handleTransition(c, h.orderService.MarkPickedUp(c.Request().Context(), id, user))
}

// CancelOrder handles POST /orders/:id/cancel
func (h *OrderHandlers) CancelOrder(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	return h.handleTransition(c, h.orderService.Cancel(c.Request().Context(), id))
}

// SetPaid handles PUT /orders/:id/paid
func (h *OrderHandlers) SetPaid(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req struct {
		Paid bool `json:"paid"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := h.orderService.SetPaid(ctx, id, req.Paid); err != nil {
		return common.SendServerError(c, "Failed to update payment state")
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /orders/:id
func (h *OrderHandlers) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	if err := h.orderService.Delete(ctx, id); err != nil {
		return common.SendServerError(c, "Failed to delete order")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHandlers) handleTransition(c echo.Context, err error) error {
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatusTransition) {
			return common.SendConflictError(c, err.Error())
		}
		return common.SendServerError(c, "Failed to update order status")
	}
	return c.NoContent(http.StatusNoContent)
}

func parsePagination(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	offset, _ = strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}
