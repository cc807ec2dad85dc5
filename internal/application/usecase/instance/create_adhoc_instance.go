// Package instance contains instance-related use cases for listing and
// manual status transitions.
package instance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// CreateAdHocInstanceInput represents the input for ad-hoc instance creation.
type CreateAdHocInstanceInput struct {
	Month     valueobject.MonthKey
	Kind      entity.TemplateKind
	DueDay    int
	Name      string
	Amount    decimal.Decimal
	SectionID *uuid.UUID
	CardID    *uuid.UUID
}

// CreateAdHocInstanceOutput represents the output of ad-hoc instance creation.
type CreateAdHocInstanceOutput struct {
	Instance *entity.Instance
}

// CreateAdHocInstanceUseCase records an entry that has no originating
// template. Ad-hoc instances count toward actual totals but never toward
// the expected total, and regeneration never touches them.
type CreateAdHocInstanceUseCase struct {
	instanceRepo adapter.InstanceRepository
	cache        adapter.SummaryCache
}

// NewCreateAdHocInstanceUseCase creates a new CreateAdHocInstanceUseCase instance.
func NewCreateAdHocInstanceUseCase(instanceRepo adapter.InstanceRepository, cache adapter.SummaryCache) *CreateAdHocInstanceUseCase {
	return &CreateAdHocInstanceUseCase{
		instanceRepo: instanceRepo,
		cache:        cache,
	}
}

// Execute performs the ad-hoc instance creation.
func (uc *CreateAdHocInstanceUseCase) Execute(ctx context.Context, input CreateAdHocInstanceInput) (*CreateAdHocInstanceOutput, error) {
	if input.Kind != entity.TemplateKindExpense && input.Kind != entity.TemplateKindIncome {
		return nil, domainerror.NewInstanceError(
			domainerror.ErrCodeInvalidInstanceKind,
			"kind must be 'expense' or 'income'",
			domainerror.ErrInvalidInstanceKind,
		)
	}
	if input.DueDay < 1 || input.DueDay > 31 {
		return nil, domainerror.NewInstanceError(
			domainerror.ErrCodeInvalidDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewInstanceError(
			domainerror.ErrCodeInvalidInstanceAmount,
			"amount must not be negative",
			domainerror.ErrInvalidInstanceAmount,
		)
	}

	inst := entity.NewAdHocInstance(
		input.Kind,
		input.Month,
		input.DueDay,
		input.Name,
		input.Amount,
		input.SectionID,
		input.CardID,
	)

	if err := uc.instanceRepo.Create(ctx, inst); err != nil {
		return nil, fmt.Errorf("failed to create ad-hoc instance: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateMonth(ctx, input.Month); err != nil {
			slog.Warn("Failed to invalidate summary cache after ad-hoc creation",
				"month", input.Month.String(),
				"error", err,
			)
		}
	}

	return &CreateAdHocInstanceOutput{Instance: inst}, nil
}
