// Package status contains the automatic status transition use cases.
// They operate on the current month only: history must stay exactly as it
// was, and future months have no due semantics yet.
package status

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// MarkOverdueInput represents the input for overdue detection.
// Now is passed explicitly so tests can simulate arbitrary dates.
type MarkOverdueInput struct {
	Month valueobject.MonthKey
	Now   time.Time
}

// MarkOverdueOutput represents the output of overdue detection.
type MarkOverdueOutput struct {
	Marked int64
}

// MarkOverdueUseCase transitions upcoming instances whose due day has
// passed to overdue. The transition is monotonic: overdue never reverts to
// upcoming automatically, and paid or deferred instances are never touched.
// Re-running on an already-settled month changes nothing.
type MarkOverdueUseCase struct {
	instanceRepo adapter.InstanceRepository
	cache        adapter.SummaryCache
}

// NewMarkOverdueUseCase creates a new MarkOverdueUseCase instance.
func NewMarkOverdueUseCase(instanceRepo adapter.InstanceRepository, cache adapter.SummaryCache) *MarkOverdueUseCase {
	return &MarkOverdueUseCase{
		instanceRepo: instanceRepo,
		cache:        cache,
	}
}

// Execute performs overdue detection for the month.
func (uc *MarkOverdueUseCase) Execute(ctx context.Context, input MarkOverdueInput) (*MarkOverdueOutput, error) {
	if !input.Month.IsCurrent(input.Now) {
		slog.Debug("Overdue detection skipped for non-current month",
			"month", input.Month.String(),
		)
		return &MarkOverdueOutput{}, nil
	}

	marked, err := uc.instanceRepo.MarkOverdue(ctx, input.Month, input.Now.Day())
	if err != nil {
		return nil, fmt.Errorf("failed to mark overdue instances: %w", err)
	}

	if marked > 0 && uc.cache != nil {
		if err := uc.cache.InvalidateMonth(ctx, input.Month); err != nil {
			slog.Warn("Failed to invalidate summary cache after overdue marking",
				"month", input.Month.String(),
				"error", err,
			)
		}
	}

	return &MarkOverdueOutput{Marked: marked}, nil
}
