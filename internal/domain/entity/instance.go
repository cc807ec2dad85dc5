// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// InstanceStatus represents the lifecycle status of a monthly instance.
type InstanceStatus string

const (
	InstanceStatusUpcoming InstanceStatus = "upcoming"
	InstanceStatusPaid     InstanceStatus = "paid"
	InstanceStatusOverdue  InstanceStatus = "overdue"
	InstanceStatusDeferred InstanceStatus = "deferred"
)

// Instance represents a concrete occurrence of a template within one
// calendar month. Amount, name and flags are snapshots copied at generation
// time: later template edits never change already-generated instances.
type Instance struct {
	ID uuid.UUID
	// TemplateID references the originating template. Nil for ad-hoc
	// instances created directly, outside generation. Kept for
	// traceability only, never for re-derivation.
	TemplateID *uuid.UUID
	Kind       TemplateKind

	Month  valueobject.MonthKey
	DueDay int

	Name   string
	Amount decimal.Decimal
	Status InstanceStatus

	IsPlanned   bool
	IsAutoDebit bool

	SectionID *uuid.UUID
	CardID    *uuid.UUID

	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewInstanceFromTemplate creates an instance for the given month and due
// day, snapshotting the template's amount and flags. New instances always
// start upcoming.
func NewInstanceFromTemplate(tpl *Template, month valueobject.MonthKey, dueDay int) *Instance {
	now := time.Now().UTC()
	templateID := tpl.ID

	return &Instance{
		ID:          uuid.New(),
		TemplateID:  &templateID,
		Kind:        tpl.Kind,
		Month:       month,
		DueDay:      dueDay,
		Name:        tpl.Name,
		Amount:      tpl.Amount,
		Status:      InstanceStatusUpcoming,
		IsPlanned:   tpl.IsPlanned,
		IsAutoDebit: tpl.IsAutoDebit,
		SectionID:   tpl.SectionID,
		CardID:      tpl.CardID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewAdHocInstance creates an instance with no originating template.
// Ad-hoc instances are unplanned: they count toward actual totals but
// never toward the expected total.
func NewAdHocInstance(
	kind TemplateKind,
	month valueobject.MonthKey,
	dueDay int,
	name string,
	amount decimal.Decimal,
	sectionID, cardID *uuid.UUID,
) *Instance {
	now := time.Now().UTC()

	return &Instance{
		ID:        uuid.New(),
		Kind:      kind,
		Month:     month,
		DueDay:    month.ClampDay(dueDay),
		Name:      name,
		Amount:    amount,
		Status:    InstanceStatusUpcoming,
		IsPlanned: false,
		SectionID: sectionID,
		CardID:    cardID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsSettled reports whether the instance reached a status the automatic
// engine must never change. Paid and deferred instances are immune to
// overdue detection, auto-debit marking and regeneration.
func (i *Instance) IsSettled() bool {
	return i.Status == InstanceStatusPaid || i.Status == InstanceStatusDeferred
}

// MarkPaid transitions the instance to paid at the given time.
func (i *Instance) MarkPaid(at time.Time) {
	i.Status = InstanceStatusPaid
	paidAt := at.UTC()
	i.PaidAt = &paidAt
	i.UpdatedAt = paidAt
}

// MarkDeferred transitions the instance to deferred. Deferred is a
// manual-only status; no automatic rule assigns or removes it.
func (i *Instance) MarkDeferred(at time.Time) {
	i.Status = InstanceStatusDeferred
	i.PaidAt = nil
	i.UpdatedAt = at.UTC()
}

// Reopen returns the instance to upcoming. Only a manual action may do
// this; no automatic path ever returns an instance to upcoming.
func (i *Instance) Reopen(at time.Time) {
	i.Status = InstanceStatusUpcoming
	i.PaidAt = nil
	i.UpdatedAt = at.UTC()
}
