package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SalonEventStatusConfirmed = "confirmed"
	SalonEventStatusCompleted = "completed"
	SalonEventStatusCancelled = "cancelled"
)

// SalonEvent is a booking of the venue's own event hall. Salon events share
// the calendar with furniture orders but do not consume furniture stock.
type SalonEvent struct {
	ID            uuid.UUID `json:"id" db:"id"`
	CustomerName  string    `json:"customer_name" db:"customer_name"`
	CustomerPhone *string   `json:"customer_phone" db:"customer_phone"`
	EventDate     time.Time `json:"event_date" db:"event_date"`
	StartTime     string    `json:"start_time" db:"start_time"`
	EventType     *string   `json:"event_type" db:"event_type"`
	GuestCount    *int      `json:"guest_count" db:"guest_count"`
	Price         float64   `json:"price" db:"price"`
	Paid          bool      `json:"paid" db:"paid"`
	Deposit       float64   `json:"deposit" db:"deposit"`
	Conditions    *string   `json:"conditions" db:"conditions"`
	Notes         *string   `json:"notes" db:"notes"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
