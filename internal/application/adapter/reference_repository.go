// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// SectionRepository defines read access to section reference data.
// Sections are consumed read-only, for grouping in summaries.
type SectionRepository interface {
	// FindAll retrieves all non-deleted sections.
	FindAll(ctx context.Context) ([]*entity.Section, error)

	// FindByID retrieves a section by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Section, error)
}

// CardRepository defines read access to card reference data.
type CardRepository interface {
	// FindAll retrieves all non-deleted cards.
	FindAll(ctx context.Context) ([]*entity.Card, error)

	// FindByID retrieves a card by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error)
}

// SettingsRepository defines read access to the settings singleton.
type SettingsRepository interface {
	// Get retrieves the settings row, falling back to defaults when none
	// has been persisted yet.
	Get(ctx context.Context) (*entity.Settings, error)
}
