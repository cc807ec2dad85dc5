// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// InstanceRepository defines the interface for instance persistence.
// Generation idempotence is enforced here, at the storage layer, through a
// uniqueness constraint on (template_id, month, due_day) plus an
// insert-on-conflict-do-nothing write: concurrent duplicate generation
// attempts collapse into a single row without application-level locking.
type InstanceRepository interface {
	// Create inserts a single instance (used for ad-hoc entries).
	Create(ctx context.Context, instance *entity.Instance) error

	// UpsertMissing inserts the given instances, silently skipping any row
	// that conflicts with an existing (template_id, month, due_day) key.
	// Returns the number of rows actually inserted.
	UpsertMissing(ctx context.Context, instances []*entity.Instance) (int64, error)

	// FindByID retrieves an instance by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Instance, error)

	// FindByMonth retrieves all instances for a month, ordered by due day.
	FindByMonth(ctx context.Context, month valueobject.MonthKey) ([]*entity.Instance, error)

	// FindByMonthAndKind retrieves all instances of one kind for a month,
	// ordered by due day.
	FindByMonthAndKind(ctx context.Context, month valueobject.MonthKey, kind entity.TemplateKind) ([]*entity.Instance, error)

	// Update saves changes to an existing instance.
	Update(ctx context.Context, instance *entity.Instance) error

	// MarkOverdue transitions every upcoming expense instance of the month
	// with due_day strictly before the given day to overdue, in a single
	// conditional update. Returns the number of rows changed.
	MarkOverdue(ctx context.Context, month valueobject.MonthKey, beforeDay int) (int64, error)

	// MarkAutoDebitPaid transitions every upcoming or overdue auto-debit
	// expense instance of the month with due_day on or before the given day
	// to paid, in a single conditional update. Returns the number of rows
	// changed.
	MarkAutoDebitPaid(ctx context.Context, month valueobject.MonthKey, throughDay int, paidAt time.Time) (int64, error)

	// FindUnpaidDueOn retrieves expense instances of the month that are due
	// on the given day and still upcoming (used for reminder scheduling).
	FindUnpaidDueOn(ctx context.Context, month valueobject.MonthKey, dueDay int) ([]*entity.Instance, error)
}
