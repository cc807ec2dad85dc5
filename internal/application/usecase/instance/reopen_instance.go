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

// ReopenInstanceInput represents the input for reopening a settled instance.
type ReopenInstanceInput struct {
	InstanceID uuid.UUID
	Now        time.Time
}

// ReopenInstanceOutput represents the output of the reopen action.
type ReopenInstanceOutput struct {
	Instance *entity.Instance
}

// ReopenInstanceUseCase returns a paid or deferred instance to upcoming.
// This is the only path back to upcoming, and it is manual by definition;
// the automatic engine may then mark the instance overdue or paid again on
// its next run.
type ReopenInstanceUseCase struct {
	instanceRepo adapter.InstanceRepository
	cache        adapter.SummaryCache
}

// NewReopenInstanceUseCase creates a new ReopenInstanceUseCase instance.
func NewReopenInstanceUseCase(instanceRepo adapter.InstanceRepository, cache adapter.SummaryCache) *ReopenInstanceUseCase {
	return &ReopenInstanceUseCase{
		instanceRepo: instanceRepo,
		cache:        cache,
	}
}

// Execute performs the reopen action.
func (uc *ReopenInstanceUseCase) Execute(ctx context.Context, input ReopenInstanceInput) (*ReopenInstanceOutput, error) {
	inst, err := uc.instanceRepo.FindByID(ctx, input.InstanceID)
	if err != nil {
		return nil, err
	}

	if !inst.IsSettled() {
		return nil, domainerror.NewInstanceError(
			domainerror.ErrCodeInstanceNotSettled,
			"only paid or deferred instances can be reopened",
			domainerror.ErrInstanceNotSettled,
		)
	}

	inst.Reopen(input.Now)

	if err := uc.instanceRepo.Update(ctx, inst); err != nil {
		return nil, fmt.Errorf("failed to update instance: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateMonth(ctx, inst.Month); err != nil {
			slog.Warn("Failed to invalidate summary cache after reopen",
				"month", inst.Month.String(),
				"error", err,
			)
		}
	}

	return &ReopenInstanceOutput{Instance: inst}, nil
}
