// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

// templateRepository implements the adapter.TemplateRepository interface.
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new template repository instance.
func NewTemplateRepository(db *gorm.DB) adapter.TemplateRepository {
	return &templateRepository{
		db: db,
	}
}

// FindByID retrieves a template by its ID.
func (r *templateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Template, error) {
	var templateModel model.TemplateModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&templateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTemplateNotFound
		}
		return nil, result.Error
	}
	return templateModel.ToEntity(), nil
}

// FindActiveByKind retrieves all non-deleted templates of the given kind.
// Ended templates are included; whether they still produce instances for a
// month is the generator's call, not the store's.
func (r *templateRepository) FindActiveByKind(ctx context.Context, kind entity.TemplateKind) ([]*entity.Template, error) {
	var templateModels []model.TemplateModel
	result := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("created_at ASC").
		Find(&templateModels)
	if result.Error != nil {
		return nil, result.Error
	}

	templates := make([]*entity.Template, len(templateModels))
	for i, tm := range templateModels {
		templates[i] = tm.ToEntity()
	}
	return templates, nil
}
