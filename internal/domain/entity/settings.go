// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Settings holds user preferences consumed read-only by aggregation and
// the reminder worker. A single settings row exists per deployment.
type Settings struct {
	ID               uuid.UUID
	CurrencyCode     string
	ReminderEnabled  bool
	ReminderLeadDays []int // Days before the due day a reminder is sent
	ReminderEmail    string
	ReminderName     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DefaultSettings returns the settings used when no row has been persisted.
func DefaultSettings() *Settings {
	now := time.Now().UTC()

	return &Settings{
		ID:               uuid.New(),
		CurrencyCode:     "EUR",
		ReminderEnabled:  false,
		ReminderLeadDays: []int{3, 1},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
