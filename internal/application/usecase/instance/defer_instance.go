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

// DeferInstanceInput represents the input for deferring an instance.
type DeferInstanceInput struct {
	InstanceID uuid.UUID
	Now        time.Time
}

// DeferInstanceOutput represents the output of the deferral.
type DeferInstanceOutput struct {
	Instance *entity.Instance
}

// DeferInstanceUseCase handles the manual deferred transition. Deferred is
// a manual-only status: no automatic rule ever assigns or removes it.
type DeferInstanceUseCase struct {
	instanceRepo adapter.InstanceRepository
	cache        adapter.SummaryCache
}

// NewDeferInstanceUseCase creates a new DeferInstanceUseCase instance.
func NewDeferInstanceUseCase(instanceRepo adapter.InstanceRepository, cache adapter.SummaryCache) *DeferInstanceUseCase {
	return &DeferInstanceUseCase{
		instanceRepo: instanceRepo,
		cache:        cache,
	}
}

// Execute performs the deferral.
func (uc *DeferInstanceUseCase) Execute(ctx context.Context, input DeferInstanceInput) (*DeferInstanceOutput, error) {
	inst, err := uc.instanceRepo.FindByID(ctx, input.InstanceID)
	if err != nil {
		return nil, err
	}

	if inst.IsSettled() {
		return nil, domainerror.NewInstanceError(
			domainerror.ErrCodeInstanceAlreadySettled,
			"instance is already paid or deferred",
			domainerror.ErrInstanceAlreadySettled,
		)
	}

	inst.MarkDeferred(input.Now)

	if err := uc.instanceRepo.Update(ctx, inst); err != nil {
		return nil, fmt.Errorf("failed to update instance: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateMonth(ctx, inst.Month); err != nil {
			slog.Warn("Failed to invalidate summary cache after deferral",
				"month", inst.Month.String(),
				"error", err,
			)
		}
	}

	return &DeferInstanceOutput{Instance: inst}, nil
}
