// Package monthview composes generation, status settlement and aggregation
// into the single read path a month page triggers.
package monthview

import (
	"context"
	"log/slog"
	"time"

	"github.com/budget-planner/backend/internal/application/usecase/generation"
	"github.com/budget-planner/backend/internal/application/usecase/instance"
	"github.com/budget-planner/backend/internal/application/usecase/status"
	"github.com/budget-planner/backend/internal/application/usecase/summary"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// GetMonthViewInput represents the input for the month view pipeline.
type GetMonthViewInput struct {
	Month valueobject.MonthKey
	Now   time.Time
}

// GetMonthViewOutput represents the assembled month view.
type GetMonthViewOutput struct {
	Instances []*entity.Instance
	Summary   *entity.MonthSummary
	CashFlow  *entity.CashFlow
	// Partial is true when generation or settlement failed and the view
	// was assembled from whatever rows already existed.
	Partial bool
}

// GetMonthViewUseCase runs the strict month pipeline: generate expenses,
// generate incomes, settle statuses (current month only), then read and
// aggregate. Each stage depends on the previous stage's persisted output.
// Generation failures degrade the view to partial data instead of an
// error page: whatever instances already exist are still shown.
type GetMonthViewUseCase struct {
	generateUseCase *generation.GenerateInstancesUseCase
	overdueUseCase  *status.MarkOverdueUseCase
	autoPaidUseCase *status.MarkAutoDebitPaidUseCase
	listUseCase     *instance.ListInstancesUseCase
	summaryUseCase  *summary.MonthSummaryUseCase
	cashFlowUseCase *summary.CashFlowUseCase
}

// NewGetMonthViewUseCase creates a new GetMonthViewUseCase instance.
func NewGetMonthViewUseCase(
	generateUseCase *generation.GenerateInstancesUseCase,
	overdueUseCase *status.MarkOverdueUseCase,
	autoPaidUseCase *status.MarkAutoDebitPaidUseCase,
	listUseCase *instance.ListInstancesUseCase,
	summaryUseCase *summary.MonthSummaryUseCase,
	cashFlowUseCase *summary.CashFlowUseCase,
) *GetMonthViewUseCase {
	return &GetMonthViewUseCase{
		generateUseCase: generateUseCase,
		overdueUseCase:  overdueUseCase,
		autoPaidUseCase: autoPaidUseCase,
		listUseCase:     listUseCase,
		summaryUseCase:  summaryUseCase,
		cashFlowUseCase: cashFlowUseCase,
	}
}

// Execute runs the pipeline for one month.
func (uc *GetMonthViewUseCase) Execute(ctx context.Context, input GetMonthViewInput) (*GetMonthViewOutput, error) {
	partial := false

	for _, kind := range []entity.TemplateKind{entity.TemplateKindExpense, entity.TemplateKindIncome} {
		_, err := uc.generateUseCase.Execute(ctx, generation.GenerateInstancesInput{
			Month: input.Month,
			Kind:  kind,
		})
		if err != nil {
			slog.Error("Generation failed, serving partial month view",
				"month", input.Month.String(),
				"kind", string(kind),
				"error", err,
			)
			partial = true
		}
	}

	if input.Month.IsCurrent(input.Now) {
		if _, err := uc.overdueUseCase.Execute(ctx, status.MarkOverdueInput{
			Month: input.Month,
			Now:   input.Now,
		}); err != nil {
			slog.Error("Overdue detection failed", "month", input.Month.String(), "error", err)
			partial = true
		}

		if _, err := uc.autoPaidUseCase.Execute(ctx, status.MarkAutoDebitPaidInput{
			Month: input.Month,
			Now:   input.Now,
		}); err != nil {
			slog.Error("Auto-debit settlement failed", "month", input.Month.String(), "error", err)
			partial = true
		}
	}

	listOutput, err := uc.listUseCase.Execute(ctx, instance.ListInstancesInput{Month: input.Month})
	if err != nil {
		return nil, err
	}

	summaryOutput, err := uc.summaryUseCase.Execute(ctx, summary.MonthSummaryInput{Month: input.Month})
	if err != nil {
		return nil, err
	}

	cashFlowOutput, err := uc.cashFlowUseCase.Execute(ctx, summary.CashFlowInput{Month: input.Month})
	if err != nil {
		return nil, err
	}

	return &GetMonthViewOutput{
		Instances: listOutput.Instances,
		Summary:   summaryOutput.Summary,
		CashFlow:  cashFlowOutput.CashFlow,
		Partial:   partial,
	}, nil
}
