package models

import (
	"github.com/google/uuid"
)

// BundleComponent is one row of a bundle definition: renting one unit of the
// bundle consumes Quantity units of the component product.
type BundleComponent struct {
	BundleID           uuid.UUID `json:"bundle_id" db:"bundle_id"`
	ComponentProductID uuid.UUID `json:"component_product_id" db:"component_product_id"`
	Quantity           int       `json:"quantity" db:"quantity"`

	// Joined from products for display and expansion.
	ComponentName  string  `json:"component_name" db:"component_name"`
	ComponentPrice float64 `json:"component_price" db:"component_price"`
}
