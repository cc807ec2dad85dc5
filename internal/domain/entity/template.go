// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TemplateKind represents the kind of template (expense or income).
type TemplateKind string

const (
	TemplateKindExpense TemplateKind = "expense"
	TemplateKindIncome  TemplateKind = "income"
)

// Recurrence represents how often a template produces instances.
type Recurrence string

const (
	RecurrenceOneTime Recurrence = "one_time"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceYearly  Recurrence = "yearly"
)

// Template represents a recurring or one-time financial definition from
// which monthly instances are generated. The generation and status engines
// treat templates as read-only; editing them is a management concern.
type Template struct {
	ID     uuid.UUID
	Name   string
	Amount decimal.Decimal // Positive magnitude; sign is applied at aggregation
	Kind   TemplateKind

	Recurrence Recurrence
	// AnchorDay is the day-of-month (1-31) for monthly and yearly recurrence.
	// Days beyond a month's length are clamped at generation time.
	AnchorDay int
	// AnchorMonth is the month a yearly template falls in.
	AnchorMonth time.Month
	// AnchorWeekday is the weekday a weekly template falls on.
	AnchorWeekday time.Weekday
	// OneTimeDate is the explicit date of a one-time template.
	OneTimeDate *time.Time

	// StartDate is the first date the template is effective; no instances
	// are generated for months before it.
	StartDate time.Time
	// EndedAt, when set, stops generation for months after it.
	EndedAt *time.Time

	// IsPlanned marks budgeted items that count toward the expected total.
	IsPlanned bool
	// IsAutoDebit marks expenses paid automatically once due.
	IsAutoDebit bool

	SectionID *uuid.UUID
	CardID    *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewTemplate creates a new Template entity.
func NewTemplate(
	name string,
	amount decimal.Decimal,
	kind TemplateKind,
	recurrence Recurrence,
	startDate time.Time,
) *Template {
	now := time.Now().UTC()

	return &Template{
		ID:         uuid.New(),
		Name:       name,
		Amount:     amount,
		Kind:       kind,
		Recurrence: recurrence,
		StartDate:  startDate,
		IsPlanned:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsActiveDuring reports whether the template is effective at any point of
// the given month window. A template that started after the window's end or
// ended before its start produces nothing.
func (t *Template) IsActiveDuring(monthStart, monthEnd time.Time) bool {
	if t.StartDate.After(monthEnd) {
		return false
	}
	if t.EndedAt != nil && t.EndedAt.Before(monthStart) {
		return false
	}
	return true
}
