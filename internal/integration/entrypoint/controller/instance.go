// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/usecase/instance"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/domain/valueobject"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
)

// InstanceController handles instance endpoints: ad-hoc creation and the
// manual status transitions.
type InstanceController struct {
	createUseCase *instance.CreateAdHocInstanceUseCase
	payUseCase    *instance.MarkPaidUseCase
	deferUseCase  *instance.DeferInstanceUseCase
	reopenUseCase *instance.ReopenInstanceUseCase
}

// NewInstanceController creates a new instance controller instance.
func NewInstanceController(
	createUseCase *instance.CreateAdHocInstanceUseCase,
	payUseCase *instance.MarkPaidUseCase,
	deferUseCase *instance.DeferInstanceUseCase,
	reopenUseCase *instance.ReopenInstanceUseCase,
) *InstanceController {
	return &InstanceController{
		createUseCase: createUseCase,
		payUseCase:    payUseCase,
		deferUseCase:  deferUseCase,
		reopenUseCase: reopenUseCase,
	}
}

// Create handles POST /instances requests for ad-hoc entries.
func (c *InstanceController) Create(ctx *gin.Context) {
	var req dto.CreateAdHocInstanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingInstanceFields),
		})
		return
	}

	month, err := valueobject.ParseMonthKey(req.Month)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month format, expected YYYY-MM",
			Code:  string(domainerror.ErrCodeInvalidMonthKey),
		})
		return
	}

	input := instance.CreateAdHocInstanceInput{
		Month:  month,
		Kind:   entity.TemplateKind(req.Kind),
		DueDay: req.DueDay,
		Name:   req.Name,
		Amount: decimal.NewFromFloat(req.Amount),
	}

	if req.SectionID != nil {
		sectionID, err := uuid.Parse(*req.SectionID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid section ID format",
			})
			return
		}
		input.SectionID = &sectionID
	}
	if req.CardID != nil {
		cardID, err := uuid.Parse(*req.CardID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid card ID format",
			})
			return
		}
		input.CardID = &cardID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInstanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInstanceResponse(output.Instance))
}

// Pay handles POST /instances/:id/pay requests.
func (c *InstanceController) Pay(ctx *gin.Context) {
	id, ok := parseInstanceID(ctx)
	if !ok {
		return
	}

	output, err := c.payUseCase.Execute(ctx.Request.Context(), instance.MarkPaidInput{
		InstanceID: id,
		Now:        time.Now().UTC(),
	})
	if err != nil {
		c.handleInstanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInstanceResponse(output.Instance))
}

// Defer handles POST /instances/:id/defer requests.
func (c *InstanceController) Defer(ctx *gin.Context) {
	id, ok := parseInstanceID(ctx)
	if !ok {
		return
	}

	output, err := c.deferUseCase.Execute(ctx.Request.Context(), instance.DeferInstanceInput{
		InstanceID: id,
		Now:        time.Now().UTC(),
	})
	if err != nil {
		c.handleInstanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInstanceResponse(output.Instance))
}

// Reopen handles POST /instances/:id/reopen requests.
func (c *InstanceController) Reopen(ctx *gin.Context) {
	id, ok := parseInstanceID(ctx)
	if !ok {
		return
	}

	output, err := c.reopenUseCase.Execute(ctx.Request.Context(), instance.ReopenInstanceInput{
		InstanceID: id,
		Now:        time.Now().UTC(),
	})
	if err != nil {
		c.handleInstanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInstanceResponse(output.Instance))
}

// parseInstanceID parses the :id URL segment, writing the error response
// itself on failure.
func parseInstanceID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid instance ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleInstanceError maps instance errors to HTTP responses.
func (c *InstanceController) handleInstanceError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrInstanceNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Instance not found",
			Code:  string(domainerror.ErrCodeInstanceNotFound),
		})
		return
	}

	var instErr *domainerror.InstanceError
	if errors.As(err, &instErr) {
		ctx.JSON(c.getStatusCodeForInstanceError(instErr.Code), dto.ErrorResponse{
			Error: instErr.Message,
			Code:  string(instErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInstanceError maps instance error codes to HTTP status codes.
func (c *InstanceController) getStatusCodeForInstanceError(code domainerror.InstanceErrorCode) int {
	switch code {
	case domainerror.ErrCodeInstanceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInstanceAlreadySettled,
		domainerror.ErrCodeInstanceNotSettled:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidInstanceKind,
		domainerror.ErrCodeInvalidDueDay,
		domainerror.ErrCodeInvalidInstanceAmount,
		domainerror.ErrCodeMissingInstanceFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
