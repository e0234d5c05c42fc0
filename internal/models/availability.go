package models

import (
	"github.com/google/uuid"
)

// AvailabilitySnapshot is the computed total/in-use/available triple for one
// physical product on a given date. It is never persisted.
// Invariant: Available == max(0, Total-InUse).
type AvailabilitySnapshot struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Total       int       `json:"total"`
	InUse       int       `json:"in_use"`
	Available   int       `json:"available"`
}
