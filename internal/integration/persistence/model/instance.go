// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// InstanceModel represents the instances table in the database.
//
// The composite unique index on (template_id, month, due_day) is what makes
// generation idempotent under concurrency: duplicate generation attempts
// conflict at the storage layer and collapse into a single row. Ad-hoc rows
// carry a NULL template_id and never conflict with each other.
type InstanceModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TemplateID  *uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_instances_template_month_day;index"`
	Kind        string          `gorm:"type:varchar(10);not null;index"`
	Month       string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_instances_template_month_day;index"`
	DueDay      int             `gorm:"not null;uniqueIndex:idx_instances_template_month_day"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status      string          `gorm:"type:varchar(10);not null;index"`
	IsPlanned   bool            `gorm:"not null;default:true"`
	IsAutoDebit bool            `gorm:"not null;default:false"`
	SectionID   *uuid.UUID      `gorm:"type:uuid;index"`
	CardID      *uuid.UUID      `gorm:"type:uuid;index"`
	PaidAt      *time.Time      `gorm:"type:timestamp"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Section *SectionModel `gorm:"foreignKey:SectionID;references:ID"`
	Card    *CardModel    `gorm:"foreignKey:CardID;references:ID"`
}

// TableName returns the table name for the InstanceModel.
func (InstanceModel) TableName() string {
	return "instances"
}

// ToEntity converts an InstanceModel to a domain Instance entity.
func (m *InstanceModel) ToEntity() *entity.Instance {
	// The month column is only ever written through MonthKey.String(), so
	// a parse failure means a corrupt row; the zero key keeps the row
	// visible instead of dropping it from views.
	month, _ := valueobject.ParseMonthKey(m.Month)

	return &entity.Instance{
		ID:          m.ID,
		TemplateID:  m.TemplateID,
		Kind:        entity.TemplateKind(m.Kind),
		Month:       month,
		DueDay:      m.DueDay,
		Name:        m.Name,
		Amount:      m.Amount,
		Status:      entity.InstanceStatus(m.Status),
		IsPlanned:   m.IsPlanned,
		IsAutoDebit: m.IsAutoDebit,
		SectionID:   m.SectionID,
		CardID:      m.CardID,
		PaidAt:      m.PaidAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// InstanceFromEntity creates an InstanceModel from a domain Instance entity.
func InstanceFromEntity(inst *entity.Instance) *InstanceModel {
	return &InstanceModel{
		ID:          inst.ID,
		TemplateID:  inst.TemplateID,
		Kind:        string(inst.Kind),
		Month:       inst.Month.String(),
		DueDay:      inst.DueDay,
		Name:        inst.Name,
		Amount:      inst.Amount,
		Status:      string(inst.Status),
		IsPlanned:   inst.IsPlanned,
		IsAutoDebit: inst.IsAutoDebit,
		SectionID:   inst.SectionID,
		CardID:      inst.CardID,
		PaidAt:      inst.PaidAt,
		CreatedAt:   inst.CreatedAt,
		UpdatedAt:   inst.UpdatedAt,
	}
}
