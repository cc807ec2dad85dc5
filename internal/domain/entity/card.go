// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Card represents a payment instrument a template or instance may be
// associated with. Cards are reference data, managed outside this core.
type Card struct {
	ID         uuid.UUID
	Name       string
	Brand      string
	ClosingDay int // Day-of-month the card statement closes
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewCard creates a new Card entity.
func NewCard(name, brand string, closingDay int) *Card {
	now := time.Now().UTC()

	return &Card{
		ID:         uuid.New(),
		Name:       name,
		Brand:      brand,
		ClosingDay: closingDay,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
