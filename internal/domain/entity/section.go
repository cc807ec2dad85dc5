// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Section represents an expense category used to group instances in
// summaries. Sections are reference data, managed outside this core.
type Section struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewSection creates a new Section entity.
func NewSection(name, color, icon string) *Section {
	now := time.Now().UTC()

	return &Section{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		Icon:      icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
