// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// CreateAdHocInstanceRequest represents the request body for ad-hoc entry creation.
type CreateAdHocInstanceRequest struct {
	Month     string  `json:"month" binding:"required"`
	Kind      string  `json:"kind" binding:"required,oneof=expense income"`
	DueDay    int     `json:"due_day" binding:"required,min=1,max=31"`
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	Amount    float64 `json:"amount" binding:"required"`
	SectionID *string `json:"section_id,omitempty"`
	CardID    *string `json:"card_id,omitempty"`
}

// InstanceResponse represents a single instance in API responses.
type InstanceResponse struct {
	ID          string     `json:"id"`
	TemplateID  *string    `json:"template_id,omitempty"`
	Kind        string     `json:"kind"`
	Month       string     `json:"month"`
	DueDay      int        `json:"due_day"`
	Name        string     `json:"name"`
	Amount      string     `json:"amount"`
	Status      string     `json:"status"`
	IsPlanned   bool       `json:"is_planned"`
	IsAutoDebit bool       `json:"is_auto_debit"`
	SectionID   *string    `json:"section_id,omitempty"`
	CardID      *string    `json:"card_id,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// InstanceListResponse represents the response for listing a month's instances.
type InstanceListResponse struct {
	Month     string             `json:"month"`
	Instances []InstanceResponse `json:"instances"`
}

// ToInstanceResponse converts a domain Instance entity to an InstanceResponse DTO.
func ToInstanceResponse(inst *entity.Instance) InstanceResponse {
	var templateID *string
	if inst.TemplateID != nil {
		s := inst.TemplateID.String()
		templateID = &s
	}
	var sectionID *string
	if inst.SectionID != nil {
		s := inst.SectionID.String()
		sectionID = &s
	}
	var cardID *string
	if inst.CardID != nil {
		s := inst.CardID.String()
		cardID = &s
	}

	return InstanceResponse{
		ID:          inst.ID.String(),
		TemplateID:  templateID,
		Kind:        string(inst.Kind),
		Month:       inst.Month.String(),
		DueDay:      inst.DueDay,
		Name:        inst.Name,
		Amount:      inst.Amount.String(),
		Status:      string(inst.Status),
		IsPlanned:   inst.IsPlanned,
		IsAutoDebit: inst.IsAutoDebit,
		SectionID:   sectionID,
		CardID:      cardID,
		PaidAt:      inst.PaidAt,
		CreatedAt:   inst.CreatedAt,
		UpdatedAt:   inst.UpdatedAt,
	}
}

// ToInstanceListResponse converts a list of instances to an InstanceListResponse.
func ToInstanceListResponse(month string, instances []*entity.Instance) InstanceListResponse {
	responses := make([]InstanceResponse, len(instances))
	for i, inst := range instances {
		responses[i] = ToInstanceResponse(inst)
	}
	return InstanceListResponse{
		Month:     month,
		Instances: responses,
	}
}
