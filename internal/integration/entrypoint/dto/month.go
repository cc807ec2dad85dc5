// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-planner/backend/internal/domain/entity"
)

// GenerateResponse represents the response for a generation request.
type GenerateResponse struct {
	Month            string `json:"month"`
	Generated        int64  `json:"generated"`
	SkippedTemplates int    `json:"skipped_templates"`
}

// SettleResponse represents the response for a status settlement request.
type SettleResponse struct {
	Month         string `json:"month"`
	MarkedOverdue int64  `json:"marked_overdue"`
	MarkedPaid    int64  `json:"marked_paid"`
}

// SectionBreakdownResponse represents one section bucket of a month summary.
type SectionBreakdownResponse struct {
	SectionID *string `json:"section_id,omitempty"`
	Name      string  `json:"name"`
	Color     string  `json:"color,omitempty"`
	Expected  string  `json:"expected"`
	Actual    string  `json:"actual"`
	Count     int     `json:"count"`
}

// MonthSummaryResponse represents the aggregated expense view of a month.
type MonthSummaryResponse struct {
	Month          string                     `json:"month"`
	CurrencyCode   string                     `json:"currency_code"`
	ExpectedTotal  string                     `json:"expected_total"`
	PaidTotal      string                     `json:"paid_total"`
	OverdueTotal   string                     `json:"overdue_total"`
	UpcomingTotal  string                     `json:"upcoming_total"`
	DeferredTotal  string                     `json:"deferred_total"`
	RemainingTotal string                     `json:"remaining_total"`
	InstanceCount  int                        `json:"instance_count"`
	BySection      []SectionBreakdownResponse `json:"by_section"`
}

// CashFlowResponse represents the in/out/balance view of a month.
type CashFlowResponse struct {
	Month        string `json:"month"`
	CurrencyCode string `json:"currency_code"`
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	Balance      string `json:"balance"`
}

// MonthViewResponse represents the full month page payload.
type MonthViewResponse struct {
	Month     string               `json:"month"`
	Instances []InstanceResponse   `json:"instances"`
	Summary   MonthSummaryResponse `json:"summary"`
	CashFlow  CashFlowResponse     `json:"cash_flow"`
	Partial   bool                 `json:"partial"`
}

// ToMonthSummaryResponse converts a domain MonthSummary to its DTO.
func ToMonthSummaryResponse(s *entity.MonthSummary) MonthSummaryResponse {
	buckets := make([]SectionBreakdownResponse, len(s.BySection))
	for i, b := range s.BySection {
		var sectionID *string
		if b.SectionID != nil {
			id := b.SectionID.String()
			sectionID = &id
		}
		buckets[i] = SectionBreakdownResponse{
			SectionID: sectionID,
			Name:      b.Name,
			Color:     b.Color,
			Expected:  b.Expected.String(),
			Actual:    b.Actual.String(),
			Count:     b.Count,
		}
	}

	return MonthSummaryResponse{
		Month:          s.Month.String(),
		CurrencyCode:   s.CurrencyCode,
		ExpectedTotal:  s.ExpectedTotal.String(),
		PaidTotal:      s.PaidTotal.String(),
		OverdueTotal:   s.OverdueTotal.String(),
		UpcomingTotal:  s.UpcomingTotal.String(),
		DeferredTotal:  s.DeferredTotal.String(),
		RemainingTotal: s.RemainingTotal.String(),
		InstanceCount:  s.InstanceCount,
		BySection:      buckets,
	}
}

// ToCashFlowResponse converts a domain CashFlow to its DTO.
func ToCashFlowResponse(flow *entity.CashFlow) CashFlowResponse {
	return CashFlowResponse{
		Month:        flow.Month.String(),
		CurrencyCode: flow.CurrencyCode,
		IncomeTotal:  flow.IncomeTotal.String(),
		ExpenseTotal: flow.ExpenseTotal.String(),
		Balance:      flow.Balance.String(),
	}
}

// ToMonthViewResponse assembles the full month page payload.
func ToMonthViewResponse(month string, instances []*entity.Instance, summary *entity.MonthSummary, flow *entity.CashFlow, partial bool) MonthViewResponse {
	responses := make([]InstanceResponse, len(instances))
	for i, inst := range instances {
		responses[i] = ToInstanceResponse(inst)
	}

	return MonthViewResponse{
		Month:     month,
		Instances: responses,
		Summary:   ToMonthSummaryResponse(summary),
		CashFlow:  ToCashFlowResponse(flow),
		Partial:   partial,
	}
}
