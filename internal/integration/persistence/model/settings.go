// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// SettingsModel represents the settings table in the database. A single
// row is expected; callers fall back to defaults when none exists.
type SettingsModel struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CurrencyCode     string        `gorm:"type:varchar(3);not null;default:'EUR'"`
	ReminderEnabled  bool          `gorm:"not null;default:false"`
	ReminderLeadDays pq.Int64Array `gorm:"type:integer[]"`
	ReminderEmail    string        `gorm:"type:varchar(255)"`
	ReminderName     string        `gorm:"type:varchar(255)"`
	CreatedAt        time.Time     `gorm:"not null"`
	UpdatedAt        time.Time     `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "settings"
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	leadDays := make([]int, 0, len(m.ReminderLeadDays))
	for _, d := range m.ReminderLeadDays {
		leadDays = append(leadDays, int(d))
	}

	return &entity.Settings{
		ID:               m.ID,
		CurrencyCode:     m.CurrencyCode,
		ReminderEnabled:  m.ReminderEnabled,
		ReminderLeadDays: leadDays,
		ReminderEmail:    m.ReminderEmail,
		ReminderName:     m.ReminderName,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// SettingsFromEntity creates a SettingsModel from a domain Settings entity.
func SettingsFromEntity(settings *entity.Settings) *SettingsModel {
	leadDays := make(pq.Int64Array, 0, len(settings.ReminderLeadDays))
	for _, d := range settings.ReminderLeadDays {
		leadDays = append(leadDays, int64(d))
	}

	return &SettingsModel{
		ID:               settings.ID,
		CurrencyCode:     settings.CurrencyCode,
		ReminderEnabled:  settings.ReminderEnabled,
		ReminderLeadDays: leadDays,
		ReminderEmail:    settings.ReminderEmail,
		ReminderName:     settings.ReminderName,
		CreatedAt:        settings.CreatedAt,
		UpdatedAt:        settings.UpdatedAt,
	}
}
