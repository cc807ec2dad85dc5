// Package instance contains instance-related use cases for listing and
// manual status transitions.
package instance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// MarkPaidInput represents the input for manually marking an instance paid.
type MarkPaidInput struct {
	InstanceID uuid.UUID
	Now        time.Time
}

// MarkPaidOutput represents the output of the manual payment.
type MarkPaidOutput struct {
	Instance *entity.Instance
}

// MarkPaidUseCase handles the manual paid transition. Once paid, an
// instance is immune to every automatic transition and to regeneration.
type MarkPaidUseCase struct {
	instanceRepo adapter.InstanceRepository
	cache        adapter.SummaryCache
}

// NewMarkPaidUseCase creates a new MarkPaidUseCase instance.
func NewMarkPaidUseCase(instanceRepo adapter.InstanceRepository, cache adapter.SummaryCache) *MarkPaidUseCase {
	return &MarkPaidUseCase{
		instanceRepo: instanceRepo,
		cache:        cache,
	}
}

// Execute performs the manual paid transition.
func (uc *MarkPaidUseCase) Execute(ctx context.Context, input MarkPaidInput) (*MarkPaidOutput, error) {
	inst, err := uc.instanceRepo.FindByID(ctx, input.InstanceID)
	if err != nil {
		return nil, err
	}

	if inst.Status == entity.InstanceStatusPaid {
		return nil, domainerror.NewInstanceError(
			domainerror.ErrCodeInstanceAlreadySettled,
			"instance is already paid",
			domainerror.ErrInstanceAlreadySettled,
		)
	}

	inst.MarkPaid(input.Now)

	if err := uc.instanceRepo.Update(ctx, inst); err != nil {
		return nil, fmt.Errorf("failed to update instance: %w", err)
	}

	uc.invalidate(ctx, inst)

	return &MarkPaidOutput{Instance: inst}, nil
}

func (uc *MarkPaidUseCase) invalidate(ctx context.Context, inst *entity.Instance) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateMonth(ctx, inst.Month); err != nil {
		slog.Warn("Failed to invalidate summary cache after manual payment",
			"month", inst.Month.String(),
			"error", err,
		)
	}
}
