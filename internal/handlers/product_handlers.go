package handlers

import (
	"net/http"

	"rentmart/internal/common"
	"rentmart/internal/models"
	"rentmart/internal/services"

	"github.com/labstack/echo/v4"
)

type ProductHandlers struct {
	productService services.ProductService
	bundleService  services.BundleService
}

func NewProductHandlers(productService services.ProductService, bundleService services.BundleService) *ProductHandlers {
	return &ProductHandlers{
		productService: productService,
		bundleService:  bundleService,
	}
}

type productRequest struct {
	Name        string  `json:"name"`
	IsBundle    bool    `json:"is_bundle"`
	HasColors   bool    `json:"has_colors"`
	HasSizes    bool    `json:"has_sizes"`
	ColorSlot   string  `json:"color_slot"`
	RentalPrice float64 `json:"rental_price"`
	StockTotal  int     `json:"stock_total"`
}

// CreateProduct handles POST /products
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := common.ValidateRequiredString(req.Name, "name", 200); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}

	product := &models.Product{
		Name:        req.Name,
		IsBundle:    req.IsBundle,
		HasColors:   req.HasColors,
		HasSizes:    req.HasSizes,
		ColorSlot:   req.ColorSlot,
		RentalPrice: req.RentalPrice,
		StockTotal:  req.StockTotal,
	}
	if err := h.productService.Create(ctx, product); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, product)
}

// GetProduct handles GET /products/:id
func (h *ProductHandlers) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	product, err := h.productService.GetByID(ctx, id)
	if err != nil {
		return common.SendNotFoundError(c, "Product")
	}
	return c.JSON(http.StatusOK, product)
}

// ListProducts handles GET /products. ?physical=true narrows the list to
// non-bundle products.
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		products []*models.Product
		err      error
	)
	if c.QueryParam("physical") == "true" {
		products, err = h.productService.ListPhysical(ctx)
	} else {
		products, err = h.productService.List(ctx)
	}
	if err != nil {
		return common.SendServerError(c, "Failed to list products")
	}
	return c.JSON(http.StatusOK, products)
}

// UpdateProduct handles PUT /products/:id
func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}

	product := &models.Product{
		ID:          id,
		Name:        req.Name,
		IsBundle:    req.IsBundle,
		HasColors:   req.HasColors,
		HasSizes:    req.HasSizes,
		ColorSlot:   req.ColorSlot,
		RentalPrice: req.RentalPrice,
		StockTotal:  req.StockTotal,
	}
	if err := h.productService.Update(ctx, product); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandlers) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	if err := h.productService.Delete(ctx, id); err != nil {
		return common.SendServerError(c, "Failed to delete product")
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSizes handles GET /products/:id/sizes
func (h *ProductHandlers) ListSizes(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	sizes, err := h.productService.ListSizes(ctx, id)
	if err != nil {
		return common.SendServerError(c, "Failed to list sizes")
	}
	return c.JSON(http.StatusOK, sizes)
}

// DescribeBundle handles GET /products/:id/description
func (h *ProductHandlers) DescribeBundle(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"description": h.bundleService.DescribeBundle(ctx, id),
	})
}

// GetBundleComponents handles GET /products/:id/components
func (h *ProductHandlers) GetBundleComponents(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	components, err := h.bundleService.ListComponents(ctx, id)
	if err != nil {
		return common.SendServerError(c, "Failed to list bundle components")
	}
	return c.JSON(http.StatusOK, components)
}

// SetBundleComponents handles PUT /products/:id/components
func (h *ProductHandlers) SetBundleComponents(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req []struct {
		ComponentProductID string `json:"component_product_id"`
		Quantity           int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}

	components := make([]*models.BundleComponent, 0, len(req))
	for _, entry := range req {
		componentID, err := common.ValidateUUID(entry.ComponentProductID, "component product id")
		if err != nil {
			return common.SendValidationError(c, "component_product_id", err.Error())
		}
		if err := common.ValidatePositiveInteger(entry.Quantity, "quantity", 10000); err != nil {
			return common.SendValidationError(c, "quantity", err.Error())
		}
		components = append(components, &models.BundleComponent{
			BundleID:           id,
			ComponentProductID: componentID,
			Quantity:           entry.Quantity,
		})
	}
	if err := h.bundleService.SetComponents(ctx, id, components); err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// BulkUpdatePrices handles PUT /products/prices
func (h *ProductHandlers) BulkUpdatePrices(c echo.Context) error {
	ctx := c.Request().Context()

	var req []struct {
		ProductID   string  `json:"product_id"`
		RentalPrice float64 `json:"rental_price"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}

	updates := make([]*models.ProductPriceUpdate, 0, len(req))
	for _, entry := range req {
		productID, err := common.ValidateUUID(entry.ProductID, "product id")
		if err != nil {
			return common.SendValidationError(c, "product_id", err.Error())
		}
		if err := common.ValidateNonNegativeFloat(entry.RentalPrice, "rental price", 1000000); err != nil {
			return common.SendValidationError(c, "rental_price", err.Error())
		}
		updates = append(updates, &models.ProductPriceUpdate{
			ProductID:   productID,
			RentalPrice: entry.RentalPrice,
		})
	}
	if err := h.productService.BulkUpdatePrices(ctx, updates); err != nil {
		return common.SendServerError(c, "Failed to update prices")
	}
	return c.NoContent(http.StatusNoContent)
}
