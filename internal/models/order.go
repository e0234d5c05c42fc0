package models

import (
	"time"

	"github.com/google/uuid"
)

// Order lifecycle. Upcoming orders are pending delivery, delivered orders are
// out with the customer, completed orders have been picked back up. Completed
// and cancelled orders no longer hold inventory.
const (
	OrderStatusUpcoming  = "upcoming"
	OrderStatusDelivered = "delivered"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	CustomerName  string     `json:"customer_name" db:"customer_name"`
	CustomerPhone *string    `json:"customer_phone" db:"customer_phone"`
	EventDate     time.Time  `json:"event_date" db:"event_date"`
	EventTime     string     `json:"event_time" db:"event_time"`
	Venue         string     `json:"venue" db:"venue"`
	VenueDetail   *string    `json:"venue_detail" db:"venue_detail"`
	Comments      *string    `json:"comments" db:"comments"`
	Total         float64    `json:"total" db:"total"`
	Paid          bool       `json:"paid" db:"paid"`
	Deposit       float64    `json:"deposit" db:"deposit"`
	Status        string     `json:"status" db:"status"`
	DeliveredBy   *string    `json:"delivered_by" db:"delivered_by"`
	DeliveredAt   *time.Time `json:"delivered_at" db:"delivered_at"`
	PickedUpBy    *string    `json:"picked_up_by" db:"picked_up_by"`
	PickedUpAt    *time.Time `json:"picked_up_at" db:"picked_up_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`

	Items []*OrderItem `json:"items,omitempty" db:"-"`
}

// ActiveOrderStatuses are the states in which an order still holds inventory
// against its event date.
func ActiveOrderStatuses() []string {
	return []string{OrderStatusUpcoming, OrderStatusDelivered}
}

// ValidOrderStatusTransition reports whether an order may move from one
// status to another.
func ValidOrderStatusTransition(from, to string) bool {
	switch from {
	case OrderStatusUpcoming:
		return to == OrderStatusDelivered || to == OrderStatusCancelled
	case OrderStatusDelivered:
		return to == OrderStatusCompleted
	default:
		return false
	}
}
