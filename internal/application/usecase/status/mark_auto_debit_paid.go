// Package status contains the automatic status transition use cases.
package status

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// MarkAutoDebitPaidInput represents the input for auto-debit settlement.
type MarkAutoDebitPaidInput struct {
	Month valueobject.MonthKey
	Now   time.Time
}

// MarkAutoDebitPaidOutput represents the output of auto-debit settlement.
type MarkAutoDebitPaidOutput struct {
	Marked int64
}

// MarkAutoDebitPaidUseCase transitions due auto-debit instances to paid.
// It also catches instances already marked overdue, so an auto-debited
// bill ends up paid no matter which automatic rule ran first. Deferred
// and already-paid instances are never touched.
type MarkAutoDebitPaidUseCase struct {
	instanceRepo adapter.InstanceRepository
	cache        adapter.SummaryCache
}

// NewMarkAutoDebitPaidUseCase creates a new MarkAutoDebitPaidUseCase instance.
func NewMarkAutoDebitPaidUseCase(instanceRepo adapter.InstanceRepository, cache adapter.SummaryCache) *MarkAutoDebitPaidUseCase {
	return &MarkAutoDebitPaidUseCase{
		instanceRepo: instanceRepo,
		cache:        cache,
	}
}

// Execute performs auto-debit settlement for the month.
func (uc *MarkAutoDebitPaidUseCase) Execute(ctx context.Context, input MarkAutoDebitPaidInput) (*MarkAutoDebitPaidOutput, error) {
	if !input.Month.IsCurrent(input.Now) {
		slog.Debug("Auto-debit settlement skipped for non-current month",
			"month", input.Month.String(),
		)
		return &MarkAutoDebitPaidOutput{}, nil
	}

	marked, err := uc.instanceRepo.MarkAutoDebitPaid(ctx, input.Month, input.Now.Day(), input.Now)
	if err != nil {
		return nil, fmt.Errorf("failed to mark auto-debit instances paid: %w", err)
	}

	if marked > 0 && uc.cache != nil {
		if err := uc.cache.InvalidateMonth(ctx, input.Month); err != nil {
			slog.Warn("Failed to invalidate summary cache after auto-debit settlement",
				"month", input.Month.String(),
				"error", err,
			)
		}
	}

	return &MarkAutoDebitPaidOutput{Marked: marked}, nil
}
