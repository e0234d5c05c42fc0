package models

import (
	"time"

	"github.com/google/uuid"
)

// Color slot constants. Products whose stock is drawn from a dedicated color
// column on order lines (a bundle can carry a tablecloth color and a bow color
// at the same time) declare which column feeds them.
const (
	ColorSlotDefault    = ""
	ColorSlotTablecloth = "tablecloth"
	ColorSlotBow        = "bow"
)

type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	IsBundle    bool      `json:"is_bundle" db:"is_bundle"`
	HasColors   bool      `json:"has_colors" db:"has_colors"`
	HasSizes    bool      `json:"has_sizes" db:"has_sizes"`
	ColorSlot   string    `json:"color_slot" db:"color_slot"`
	RentalPrice float64   `json:"rental_price" db:"rental_price"`
	StockTotal  int       `json:"stock_total" db:"stock_total"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProductColor is an independently stocked color pool of a product. For
// color-bearing products the sum of StockAvailable across rows is the
// product's true capacity; StockTotal on the product is not used.
type ProductColor struct {
	ID             uuid.UUID `json:"id" db:"id"`
	ProductID      uuid.UUID `json:"product_id" db:"product_id"`
	Color          string    `json:"color" db:"color"`
	StockAvailable int       `json:"stock_available" db:"stock_available"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// ProductSize carries a per-size rental price (tarps and modules rent by
// dimensions, e.g. "10x7").
type ProductSize struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ProductID   uuid.UUID `json:"product_id" db:"product_id"`
	Size        string    `json:"size" db:"size"`
	RentalPrice float64   `json:"rental_price" db:"rental_price"`
}

// ProductPriceUpdate is one entry of a bulk rental-price update.
type ProductPriceUpdate struct {
	ProductID   uuid.UUID `json:"product_id"`
	RentalPrice float64   `json:"rental_price"`
}
