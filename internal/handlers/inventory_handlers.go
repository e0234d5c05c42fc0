package handlers

import (
	"net/http"

	"rentmart/internal/common"
	"rentmart/internal/models"
	"rentmart/internal/services"

	"github.com/labstack/echo/v4"
)

type InventoryHandlers struct {
	inventoryService services.InventoryService
}

func NewInventoryHandlers(inventoryService services.InventoryService) *InventoryHandlers {
	return &InventoryHandlers{inventoryService: inventoryService}
}

// SetStock handles PUT /inventory/:productId/stock
func (h *InventoryHandlers) SetStock(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := common.ValidateUUID(c.Param("productId"), "product id")
	if err != nil {
		return common.SendValidationError(c, "productId", err.Error())
	}

	var req struct {
		StockTotal int `json:"stock_total"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := h.inventoryService.SetStockTotal(ctx, productID, req.StockTotal); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// AdjustStock handles POST /inventory/:productId/adjust
func (h *InventoryHandlers) AdjustStock(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := common.ValidateUUID(c.Param("productId"), "product id")
	if err != nil {
		return common.SendValidationError(c, "productId", err.Error())
	}

	var req struct {
		Change int `json:"change"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if req.Change == 0 {
		return common.SendValidationError(c, "change", "change must be non-zero")
	}
	if err := h.inventoryService.AdjustStockTotal(ctx, productID, req.Change); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// ListColors handles GET /inventory/:productId/colors
func (h *InventoryHandlers) ListColors(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := common.ValidateUUID(c.Param("productId"), "product id")
	if err != nil {
		return common.SendValidationError(c, "productId", err.Error())
	}
	colors, err := h.inventoryService.ListColors(ctx, productID)
	if err != nil {
		return common.SendServerError(c, "Failed to list colors")
	}
	return c.JSON(http.StatusOK, colors)
}

// AddColor handles POST /inventory/:productId/colors
func (h *InventoryHandlers) AddColor(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := common.ValidateUUID(c.Param("productId"), "product id")
	if err != nil {
		return common.SendValidationError(c, "productId", err.Error())
	}

	var req struct {
		Color          string `json:"color"`
		StockAvailable int    `json:"stock_available"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}

	color := &models.ProductColor{
		ProductID:      productID,
		Color:          req.Color,
		StockAvailable: req.StockAvailable,
	}
	if err := h.inventoryService.AddColor(ctx, color); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, color)
}

// SetColorStock handles PUT /inventory/colors/:colorId
func (h *InventoryHandlers) SetColorStock(c echo.Context) error {
	ctx := c.Request().Context()

	colorID, err := common.ValidateUUID(c.Param("colorId"), "color id")
	if err != nil {
		return common.SendValidationError(c, "colorId", err.Error())
	}

	var req struct {
		StockAvailable int `json:"stock_available"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := h.inventoryService.SetColorStock(ctx, colorID, req.StockAvailable); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveColor handles DELETE /inventory/colors/:colorId
func (h *InventoryHandlers) RemoveColor(c echo.Context) error {
	ctx := c.Request().Context()

	colorID, err := common.ValidateUUID(c.Param("colorId"), "color id")
	if err != nil {
		return common.SendValidationError(c, "colorId", err.Error())
	}
	if err := h.inventoryService.RemoveColor(ctx, colorID); err != nil {
		return common.SendServerError(c, "Failed to remove color")
	}
	return c.NoContent(http.StatusNoContent)
}

// TotalPieceCount handles GET /inventory/total
func (h *InventoryHandlers) TotalPieceCount(c echo.Context) error {
	ctx := c.Request().Context()

	total, err := h.inventoryService.TotalPieceCount(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to count inventory")
	}
	return c.JSON(http.StatusOK, map[string]int{"total_pieces": total})
}
