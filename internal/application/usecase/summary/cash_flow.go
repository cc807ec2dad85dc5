// Package summary contains the month aggregation use cases.
package summary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// CashFlowInput represents the input for the cash-flow computation.
type CashFlowInput struct {
	Month valueobject.MonthKey
}

// CashFlowOutput represents the output of the cash-flow computation.
type CashFlowOutput struct {
	CashFlow *entity.CashFlow
}

// CashFlowUseCase folds a month's instances into the projected in/out/balance
// view. Expenses count regardless of status: a generated expense is a
// committed obligation, so the balance is a projection rather than a
// bank-reconciled figure.
type CashFlowUseCase struct {
	instanceRepo adapter.InstanceRepository
	settingsRepo adapter.SettingsRepository
	cache        adapter.SummaryCache
}

// NewCashFlowUseCase creates a new CashFlowUseCase instance.
func NewCashFlowUseCase(
	instanceRepo adapter.InstanceRepository,
	settingsRepo adapter.SettingsRepository,
	cache adapter.SummaryCache,
) *CashFlowUseCase {
	return &CashFlowUseCase{
		instanceRepo: instanceRepo,
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

// Execute computes the cash flow, serving from cache when possible.
func (uc *CashFlowUseCase) Execute(ctx context.Context, input CashFlowInput) (*CashFlowOutput, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetCashFlow(ctx, input.Month)
		if err != nil {
			slog.Warn("Cash-flow cache read failed", "month", input.Month.String(), "error", err)
		} else if cached != nil {
			return &CashFlowOutput{CashFlow: cached}, nil
		}
	}

	instances, err := uc.instanceRepo.FindByMonth(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load instances: %w", err)
	}

	flow := &entity.CashFlow{
		Month:        input.Month,
		CurrencyCode: uc.currencyCode(ctx),
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}

	for _, inst := range instances {
		switch inst.Kind {
		case entity.TemplateKindIncome:
			flow.IncomeTotal = flow.IncomeTotal.Add(inst.Amount)
		case entity.TemplateKindExpense:
			flow.ExpenseTotal = flow.ExpenseTotal.Add(inst.Amount)
		}
	}
	flow.Balance = flow.IncomeTotal.Sub(flow.ExpenseTotal)

	if uc.cache != nil {
		if err := uc.cache.SetCashFlow(ctx, flow); err != nil {
			slog.Warn("Cash-flow cache write failed", "month", input.Month.String(), "error", err)
		}
	}

	return &CashFlowOutput{CashFlow: flow}, nil
}

func (uc *CashFlowUseCase) currencyCode(ctx context.Context) string {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		slog.Warn("Failed to load settings, using defaults", "error", err)
		return entity.DefaultSettings().CurrencyCode
	}
	return settings.CurrencyCode
}
