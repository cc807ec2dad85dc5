// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/domain/valueobject"
	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

// instanceRepository implements the adapter.InstanceRepository interface.
type instanceRepository struct {
	db *gorm.DB
}

// NewInstanceRepository creates a new instance repository instance.
func NewInstanceRepository(db *gorm.DB) adapter.InstanceRepository {
	return &instanceRepository{
		db: db,
	}
}

// Create inserts a single instance in the database.
func (r *instanceRepository) Create(ctx context.Context, instance *entity.Instance) error {
	instanceModel := model.InstanceFromEntity(instance)
	result := r.db.WithContext(ctx).Create(instanceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpsertMissing inserts the given instances, skipping any row that conflicts
// with the unique (template_id, month, due_day) index. The conflict clause is
// what keeps generation idempotent: rows that already exist, whatever their
// current status, are left untouched.
func (r *instanceRepository) UpsertMissing(ctx context.Context, instances []*entity.Instance) (int64, error) {
	if len(instances) == 0 {
		return 0, nil
	}

	models := make([]*model.InstanceModel, len(instances))
	for i, inst := range instances {
		models[i] = model.InstanceFromEntity(inst)
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "template_id"},
				{Name: "month"},
				{Name: "due_day"},
			},
			DoNothing: true,
		}).
		Create(models)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// FindByID retrieves an instance by its ID.
func (r *instanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Instance, error) {
	var instanceModel model.InstanceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&instanceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInstanceNotFound
		}
		return nil, result.Error
	}
	return instanceModel.ToEntity(), nil
}

// FindByMonth retrieves all instances for a month, ordered by due day.
func (r *instanceRepository) FindByMonth(ctx context.Context, month valueobject.MonthKey) ([]*entity.Instance, error) {
	var instanceModels []model.InstanceModel
	result := r.db.WithContext(ctx).
		Where("month = ?", month.String()).
		Order("due_day ASC, created_at ASC").
		Find(&instanceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	instances := make([]*entity.Instance, len(instanceModels))
	for i, im := range instanceModels {
		instances[i] = im.ToEntity()
	}
	return instances, nil
}

// FindByMonthAndKind retrieves all instances of one kind for a month, ordered
// by due day.
func (r *instanceRepository) FindByMonthAndKind(ctx context.Context, month valueobject.MonthKey, kind entity.TemplateKind) ([]*entity.Instance, error) {
	var instanceModels []model.InstanceModel
	result := r.db.WithContext(ctx).
		Where("month = ? AND kind = ?", month.String(), string(kind)).
		Order("due_day ASC, created_at ASC").
		Find(&instanceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	instances := make([]*entity.Instance, len(instanceModels))
	for i, im := range instanceModels {
		instances[i] = im.ToEntity()
	}
	return instances, nil
}

// Update updates an existing instance in the database.
func (r *instanceRepository) Update(ctx context.Context, instance *entity.Instance) error {
	instanceModel := model.InstanceFromEntity(instance)
	result := r.db.WithContext(ctx).Save(instanceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// MarkOverdue transitions upcoming expense instances with a due day strictly
// before the given day to overdue. A single conditional UPDATE keeps the
// operation idempotent: rows already overdue, paid or deferred never match
// the status predicate.
func (r *instanceRepository) MarkOverdue(ctx context.Context, month valueobject.MonthKey, beforeDay int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.InstanceModel{}).
		Where("month = ?", month.String()).
		Where("kind = ?", string(entity.TemplateKindExpense)).
		Where("status = ?", string(entity.InstanceStatusUpcoming)).
		Where("due_day < ?", beforeDay).
		Updates(map[string]interface{}{
			"status":     string(entity.InstanceStatusOverdue),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// MarkAutoDebitPaid transitions upcoming or overdue auto-debit expense
// instances with a due day on or before the given day to paid. Runs as a
// single conditional UPDATE so repeated invocations change nothing.
func (r *instanceRepository) MarkAutoDebitPaid(ctx context.Context, month valueobject.MonthKey, throughDay int, paidAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.InstanceModel{}).
		Where("month = ?", month.String()).
		Where("kind = ?", string(entity.TemplateKindExpense)).
		Where("is_auto_debit = ?", true).
		Where("status IN ?", []string{
			string(entity.InstanceStatusUpcoming),
			string(entity.InstanceStatusOverdue),
		}).
		Where("due_day <= ?", throughDay).
		Updates(map[string]interface{}{
			"status":     string(entity.InstanceStatusPaid),
			"paid_at":    paidAt,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// FindUnpaidDueOn retrieves expense instances of the month due on the given
// day that are still upcoming.
func (r *instanceRepository) FindUnpaidDueOn(ctx context.Context, month valueobject.MonthKey, dueDay int) ([]*entity.Instance, error) {
	var instanceModels []model.InstanceModel
	result := r.db.WithContext(ctx).
		Where("month = ?", month.String()).
		Where("kind = ?", string(entity.TemplateKindExpense)).
		Where("status = ?", string(entity.InstanceStatusUpcoming)).
		Where("due_day = ?", dueDay).
		Order("due_day ASC, created_at ASC").
		Find(&instanceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	instances := make([]*entity.Instance, len(instanceModels))
	for i, im := range instanceModels {
		instances[i] = im.ToEntity()
	}
	return instances, nil
}
