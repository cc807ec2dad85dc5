// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// CardModel represents the cards table in the database.
type CardModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name       string         `gorm:"type:varchar(100);not null"`
	Brand      string         `gorm:"type:varchar(50)"`
	ClosingDay int            `gorm:"not null;default:1"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
	DeletedAt  gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the CardModel.
func (CardModel) TableName() string {
	return "cards"
}

// ToEntity converts a CardModel to a domain Card entity.
func (m *CardModel) ToEntity() *entity.Card {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Card{
		ID:         m.ID,
		Name:       m.Name,
		Brand:      m.Brand,
		ClosingDay: m.ClosingDay,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// CardFromEntity creates a CardModel from a domain Card entity.
func CardFromEntity(card *entity.Card) *CardModel {
	var deletedAt gorm.DeletedAt
	if card.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *card.DeletedAt, Valid: true}
	}

	return &CardModel{
		ID:         card.ID,
		Name:       card.Name,
		Brand:      card.Brand,
		ClosingDay: card.ClosingDay,
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
