// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// SectionModel represents the sections table in the database.
type SectionModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"type:varchar(100);not null"`
	Color     string         `gorm:"type:varchar(7)"`
	Icon      string         `gorm:"type:varchar(50)"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the SectionModel.
func (SectionModel) TableName() string {
	return "sections"
}

// ToEntity converts a SectionModel to a domain Section entity.
func (m *SectionModel) ToEntity() *entity.Section {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Section{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		Icon:      m.Icon,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// SectionFromEntity creates a SectionModel from a domain Section entity.
func SectionFromEntity(section *entity.Section) *SectionModel {
	var deletedAt gorm.DeletedAt
	if section.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *section.DeletedAt, Valid: true}
	}

	return &SectionModel{
		ID:        section.ID,
		Name:      section.Name,
		Color:     section.Color,
		Icon:      section.Icon,
		CreatedAt: section.CreatedAt,
		UpdatedAt: section.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
