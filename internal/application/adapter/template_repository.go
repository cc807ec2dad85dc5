// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// TemplateRepository defines the read-only interface the core uses to
// consume templates. Template management (create/edit/end) lives outside
// the generation and status engines.
type TemplateRepository interface {
	// FindByID retrieves a template by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Template, error)

	// FindActiveByKind retrieves all non-deleted templates of the given kind.
	// Ended templates are included; the generator decides per month whether
	// an ended template still produces instances.
	FindActiveByKind(ctx context.Context, kind entity.TemplateKind) ([]*entity.Template, error)
}
