// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
)

// ReferenceController serves the read-only reference data: sections, cards
// and settings. These are thin pass-throughs, no use case layer involved.
type ReferenceController struct {
	sectionRepo  adapter.SectionRepository
	cardRepo     adapter.CardRepository
	settingsRepo adapter.SettingsRepository
}

// NewReferenceController creates a new reference controller instance.
func NewReferenceController(
	sectionRepo adapter.SectionRepository,
	cardRepo adapter.CardRepository,
	settingsRepo adapter.SettingsRepository,
) *ReferenceController {
	return &ReferenceController{
		sectionRepo:  sectionRepo,
		cardRepo:     cardRepo,
		settingsRepo: settingsRepo,
	}
}

// ListSections handles GET /sections requests.
func (c *ReferenceController) ListSections(ctx *gin.Context) {
	sections, err := c.sectionRepo.FindAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve sections",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSectionListResponse(sections))
}

// ListCards handles GET /cards requests.
func (c *ReferenceController) ListCards(ctx *gin.Context) {
	cards, err := c.cardRepo.FindAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve cards",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCardListResponse(cards))
}

// GetSettings handles GET /settings requests.
func (c *ReferenceController) GetSettings(ctx *gin.Context) {
	settings, err := c.settingsRepo.Get(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve settings",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
