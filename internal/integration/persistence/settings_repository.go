// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get retrieves the settings row, falling back to in-memory defaults when no
// row has been persisted yet.
func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settingsModel model.SettingsModel
	result := r.db.WithContext(ctx).Order("created_at ASC").First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.DefaultSettings(), nil
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}
