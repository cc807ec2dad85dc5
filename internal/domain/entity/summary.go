// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// SectionBreakdown represents the per-section slice of a month summary.
// Instances without a section fall into a bucket with a nil SectionID.
type SectionBreakdown struct {
	SectionID *uuid.UUID
	Name      string
	Color     string
	Expected  decimal.Decimal
	Actual    decimal.Decimal
	Count     int
}

// MonthSummary represents the aggregated expense view of one month.
// Expected counts planned instances only; the status buckets count every
// instance regardless of planning.
type MonthSummary struct {
	Month         valueobject.MonthKey
	CurrencyCode  string
	ExpectedTotal decimal.Decimal
	PaidTotal     decimal.Decimal
	OverdueTotal  decimal.Decimal
	UpcomingTotal decimal.Decimal
	DeferredTotal decimal.Decimal
	// RemainingTotal is expected minus paid. It stays signed: ad-hoc
	// payments can push it below zero and the core does not hide that.
	RemainingTotal decimal.Decimal
	InstanceCount  int
	BySection      []SectionBreakdown
}

// CashFlow represents the projected in/out/balance view of one month.
// Expenses count regardless of status: they are committed obligations,
// not bank-reconciled figures.
type CashFlow struct {
	Month        valueobject.MonthKey
	CurrencyCode string
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal
}
