// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// TemplateModel represents the templates table in the database.
type TemplateModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Kind          string          `gorm:"type:varchar(10);not null;index"`
	Recurrence    string          `gorm:"type:varchar(10);not null"`
	AnchorDay     int             `gorm:"not null;default:0"`
	AnchorMonth   int             `gorm:"not null;default:0"`
	AnchorWeekday int             `gorm:"not null;default:0"`
	OneTimeDate   *time.Time      `gorm:"type:date"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndedAt       *time.Time      `gorm:"type:date"`
	IsPlanned     bool            `gorm:"not null;default:true"`
	IsAutoDebit   bool            `gorm:"not null;default:false"`
	SectionID     *uuid.UUID      `gorm:"type:uuid;index"`
	CardID        *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Section *SectionModel `gorm:"foreignKey:SectionID;references:ID"`
	Card    *CardModel    `gorm:"foreignKey:CardID;references:ID"`
}

// TableName returns the table name for the TemplateModel.
func (TemplateModel) TableName() string {
	return "templates"
}

// ToEntity converts a TemplateModel to a domain Template entity.
func (m *TemplateModel) ToEntity() *entity.Template {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Template{
		ID:            m.ID,
		Name:          m.Name,
		Amount:        m.Amount,
		Kind:          entity.TemplateKind(m.Kind),
		Recurrence:    entity.Recurrence(m.Recurrence),
		AnchorDay:     m.AnchorDay,
		AnchorMonth:   time.Month(m.AnchorMonth),
		AnchorWeekday: time.Weekday(m.AnchorWeekday),
		OneTimeDate:   m.OneTimeDate,
		StartDate:     m.StartDate,
		EndedAt:       m.EndedAt,
		IsPlanned:     m.IsPlanned,
		IsAutoDebit:   m.IsAutoDebit,
		SectionID:     m.SectionID,
		CardID:        m.CardID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// TemplateFromEntity creates a TemplateModel from a domain Template entity.
func TemplateFromEntity(tpl *entity.Template) *TemplateModel {
	var deletedAt gorm.DeletedAt
	if tpl.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *tpl.DeletedAt, Valid: true}
	}

	return &TemplateModel{
		ID:            tpl.ID,
		Name:          tpl.Name,
		Amount:        tpl.Amount,
		Kind:          string(tpl.Kind),
		Recurrence:    string(tpl.Recurrence),
		AnchorDay:     tpl.AnchorDay,
		AnchorMonth:   int(tpl.AnchorMonth),
		AnchorWeekday: int(tpl.AnchorWeekday),
		OneTimeDate:   tpl.OneTimeDate,
		StartDate:     tpl.StartDate,
		EndedAt:       tpl.EndedAt,
		IsPlanned:     tpl.IsPlanned,
		IsAutoDebit:   tpl.IsAutoDebit,
		SectionID:     tpl.SectionID,
		CardID:        tpl.CardID,
		CreatedAt:     tpl.CreatedAt,
		UpdatedAt:     tpl.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
