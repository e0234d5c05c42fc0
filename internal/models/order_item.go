package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is one persisted line of an order. Bundle lines carry the price;
// their component lines are persisted alongside with IsBundleComponent set and
// a zero price, so that availability accounting has concrete rows to sum.
//
// A line can record a color under one of three slots: Color for ordinary
// color-bearing products, TableclothColor and BowColor for the two
// independently colored sub-items a bundle can carry.
type OrderItem struct {
	ID                uuid.UUID `json:"id" db:"id"`
	OrderID           uuid.UUID `json:"order_id" db:"order_id"`
	ProductID         uuid.UUID `json:"product_id" db:"product_id"`
	ProductName       string    `json:"product_name,omitempty" db:"-"`
	Quantity          int       `json:"quantity" db:"quantity"`
	UnitPrice         float64   `json:"unit_price" db:"unit_price"`
	Subtotal          float64   `json:"subtotal" db:"subtotal"`
	IsBundleComponent bool      `json:"is_bundle_component" db:"is_bundle_component"`
	Color             *string   `json:"color" db:"color"`
	TableclothColor   *string   `json:"tablecloth_color" db:"tablecloth_color"`
	BowColor          *string   `json:"bow_color" db:"bow_color"`
	Size              *string   `json:"size" db:"size"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// EffectiveColor resolves which color, if any, this line consumes from the
// given product's pool. The plain Color slot wins; the tablecloth and bow
// slots apply only to products declaring that slot.
func (i *OrderItem) EffectiveColor(p *Product) string {
	if i.Color != nil && *i.Color != "" {
		return *i.Color
	}
	switch p.ColorSlot {
	case ColorSlotTablecloth:
		if i.TableclothColor != nil {
			return *i.TableclothColor
		}
	case ColorSlotBow:
		if i.BowColor != nil {
			return *i.BowColor
		}
	}
	return ""
}
