package models

import (
	"github.com/google/uuid"
)

// Venue is a frequently used delivery location offered in the order form.
type Venue struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Active   bool      `json:"active" db:"active"`
	Position int       `json:"position" db:"position"`
}
