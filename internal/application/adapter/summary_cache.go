// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// SummaryCache caches computed month summaries and cash-flow views.
// The cache is an optimization, never a source of failure: implementations
// must degrade to a miss on any backend error, and callers must treat a
// miss as "compute it".
type SummaryCache interface {
	// GetSummary returns the cached summary for the month, or nil on a miss.
	GetSummary(ctx context.Context, month valueobject.MonthKey) (*entity.MonthSummary, error)

	// SetSummary stores the summary for the month.
	SetSummary(ctx context.Context, summary *entity.MonthSummary) error

	// GetCashFlow returns the cached cash flow for the month, or nil on a miss.
	GetCashFlow(ctx context.Context, month valueobject.MonthKey) (*entity.CashFlow, error)

	// SetCashFlow stores the cash flow for the month.
	SetCashFlow(ctx context.Context, flow *entity.CashFlow) error

	// InvalidateMonth drops all cached views for the month. Called after
	// any write that changes the month's instances.
	InvalidateMonth(ctx context.Context, month valueobject.MonthKey) error
}
