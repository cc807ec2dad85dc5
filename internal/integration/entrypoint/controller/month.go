// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budget-planner/backend/internal/application/usecase/generation"
	"github.com/budget-planner/backend/internal/application/usecase/instance"
	"github.com/budget-planner/backend/internal/application/usecase/monthview"
	"github.com/budget-planner/backend/internal/application/usecase/status"
	"github.com/budget-planner/backend/internal/application/usecase/summary"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/domain/valueobject"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
)

// MonthController handles month-scoped endpoints: the composed month view,
// explicit generation, instance listing and the aggregation views.
type MonthController struct {
	monthViewUseCase *monthview.GetMonthViewUseCase
	generateUseCase  *generation.GenerateInstancesUseCase
	overdueUseCase   *status.MarkOverdueUseCase
	autoPaidUseCase  *status.MarkAutoDebitPaidUseCase
	listUseCase      *instance.ListInstancesUseCase
	summaryUseCase   *summary.MonthSummaryUseCase
	cashFlowUseCase  *summary.CashFlowUseCase
	now              func() time.Time
}

// NewMonthController creates a new month controller instance. A nil clock
// falls back to the wall clock in UTC.
func NewMonthController(
	monthViewUseCase *monthview.GetMonthViewUseCase,
	generateUseCase *generation.GenerateInstancesUseCase,
	overdueUseCase *status.MarkOverdueUseCase,
	autoPaidUseCase *status.MarkAutoDebitPaidUseCase,
	listUseCase *instance.ListInstancesUseCase,
	summaryUseCase *summary.MonthSummaryUseCase,
	cashFlowUseCase *summary.CashFlowUseCase,
	now func() time.Time,
) *MonthController {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &MonthController{
		monthViewUseCase: monthViewUseCase,
		generateUseCase:  generateUseCase,
		overdueUseCase:   overdueUseCase,
		autoPaidUseCase:  autoPaidUseCase,
		listUseCase:      listUseCase,
		summaryUseCase:   summaryUseCase,
		cashFlowUseCase:  cashFlowUseCase,
		now:              now,
	}
}

// parseMonthParam parses the :month URL segment, writing the error response
// itself on failure.
func parseMonthParam(ctx *gin.Context) (valueobject.MonthKey, bool) {
	month, err := valueobject.ParseMonthKey(ctx.Param("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month format, expected YYYY-MM",
			Code:  string(domainerror.ErrCodeInvalidMonthKey),
		})
		return valueobject.MonthKey{}, false
	}
	return month, true
}

// GetView handles GET /months/:month requests. It runs the full month
// pipeline: generation, status settlement and aggregation.
func (c *MonthController) GetView(ctx *gin.Context) {
	month, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	output, err := c.monthViewUseCase.Execute(ctx.Request.Context(), monthview.GetMonthViewInput{
		Month: month,
		Now:   c.now(),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to assemble month view",
		})
		return
	}

	response := dto.ToMonthViewResponse(month.String(), output.Instances, output.Summary, output.CashFlow, output.Partial)
	ctx.JSON(http.StatusOK, response)
}

// Generate handles POST /months/:month/generate requests. Generation is
// idempotent: repeating the call reports zero generated rows.
func (c *MonthController) Generate(ctx *gin.Context) {
	month, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	var generated int64
	var skipped int
	for _, kind := range []entity.TemplateKind{entity.TemplateKindExpense, entity.TemplateKindIncome} {
		output, err := c.generateUseCase.Execute(ctx.Request.Context(), generation.GenerateInstancesInput{
			Month: month,
			Kind:  kind,
		})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to generate instances",
			})
			return
		}
		generated += output.Generated
		skipped += output.SkippedTemplates
	}

	ctx.JSON(http.StatusOK, dto.GenerateResponse{
		Month:            month.String(),
		Generated:        generated,
		SkippedTemplates: skipped,
	})
}

// Settle handles POST /months/:month/settle requests. It runs the two
// automatic status rules; both are no-ops outside the current month.
func (c *MonthController) Settle(ctx *gin.Context) {
	month, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	now := c.now()

	overdueOutput, err := c.overdueUseCase.Execute(ctx.Request.Context(), status.MarkOverdueInput{
		Month: month,
		Now:   now,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to mark overdue instances",
		})
		return
	}

	paidOutput, err := c.autoPaidUseCase.Execute(ctx.Request.Context(), status.MarkAutoDebitPaidInput{
		Month: month,
		Now:   now,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to settle auto-debit instances",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SettleResponse{
		Month:         month.String(),
		MarkedOverdue: overdueOutput.Marked,
		MarkedPaid:    paidOutput.Marked,
	})
}

// ListInstances handles GET /months/:month/instances requests.
func (c *MonthController) ListInstances(ctx *gin.Context) {
	month, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	input := instance.ListInstancesInput{Month: month}
	if kindStr := ctx.Query("kind"); kindStr != "" {
		kind := entity.TemplateKind(kindStr)
		if kind != entity.TemplateKindExpense && kind != entity.TemplateKindIncome {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid kind, expected expense or income",
				Code:  string(domainerror.ErrCodeInvalidInstanceKind),
			})
			return
		}
		input.Kind = &kind
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list instances",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInstanceListResponse(month.String(), output.Instances))
}

// GetSummary handles GET /months/:month/summary requests.
func (c *MonthController) GetSummary(ctx *gin.Context) {
	month, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), summary.MonthSummaryInput{Month: month})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute month summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthSummaryResponse(output.Summary))
}

// GetCashFlow handles GET /months/:month/cash-flow requests.
func (c *MonthController) GetCashFlow(ctx *gin.Context) {
	month, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	output, err := c.cashFlowUseCase.Execute(ctx.Request.Context(), summary.CashFlowInput{Month: month})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute cash flow",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashFlowResponse(output.CashFlow))
}
