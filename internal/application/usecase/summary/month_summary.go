// Package summary contains the month aggregation use cases. Aggregation is
// a pure fold over already-persisted instances: callers must have generated
// and settled the month first, otherwise totals under-count.
package summary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// unallocatedBucket names the breakdown bucket for instances without a section.
const unallocatedBucket = "Unallocated"

// MonthSummaryInput represents the input for the month summary computation.
type MonthSummaryInput struct {
	Month valueobject.MonthKey
}

// MonthSummaryOutput represents the output of the month summary computation.
type MonthSummaryOutput struct {
	Summary *entity.MonthSummary
}

// MonthSummaryUseCase folds a month's expense instances into totals and a
// per-section breakdown. Planned instances drive the expected total; every
// instance, planned or ad-hoc, contributes to the status buckets.
type MonthSummaryUseCase struct {
	instanceRepo adapter.InstanceRepository
	sectionRepo  adapter.SectionRepository
	settingsRepo adapter.SettingsRepository
	cache        adapter.SummaryCache
}

// NewMonthSummaryUseCase creates a new MonthSummaryUseCase instance.
func NewMonthSummaryUseCase(
	instanceRepo adapter.InstanceRepository,
	sectionRepo adapter.SectionRepository,
	settingsRepo adapter.SettingsRepository,
	cache adapter.SummaryCache,
) *MonthSummaryUseCase {
	return &MonthSummaryUseCase{
		instanceRepo: instanceRepo,
		sectionRepo:  sectionRepo,
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

// Execute computes the month summary, serving from cache when possible.
func (uc *MonthSummaryUseCase) Execute(ctx context.Context, input MonthSummaryInput) (*MonthSummaryOutput, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetSummary(ctx, input.Month)
		if err != nil {
			slog.Warn("Summary cache read failed", "month", input.Month.String(), "error", err)
		} else if cached != nil {
			return &MonthSummaryOutput{Summary: cached}, nil
		}
	}

	instances, err := uc.instanceRepo.FindByMonthAndKind(ctx, input.Month, entity.TemplateKindExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense instances: %w", err)
	}

	sections, err := uc.sectionRepo.FindAll(ctx)
	if err != nil {
		// A summary with unnamed sections is more useful than no summary.
		slog.Warn("Failed to load sections for breakdown", "error", err)
		sections = nil
	}

	currency := uc.currencyCode(ctx)
	result := fold(input.Month, currency, instances, sections)

	if uc.cache != nil {
		if err := uc.cache.SetSummary(ctx, result); err != nil {
			slog.Warn("Summary cache write failed", "month", input.Month.String(), "error", err)
		}
	}

	return &MonthSummaryOutput{Summary: result}, nil
}

func (uc *MonthSummaryUseCase) currencyCode(ctx context.Context) string {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		slog.Warn("Failed to load settings, using defaults", "error", err)
		return entity.DefaultSettings().CurrencyCode
	}
	return settings.CurrencyCode
}

// fold computes the summary record from the instance set. It is pure.
func fold(
	month valueobject.MonthKey,
	currency string,
	instances []*entity.Instance,
	sections []*entity.Section,
) *entity.MonthSummary {
	sectionsByID := make(map[uuid.UUID]*entity.Section, len(sections))
	for _, s := range sections {
		sectionsByID[s.ID] = s
	}

	summary := &entity.MonthSummary{
		Month:          month,
		CurrencyCode:   currency,
		ExpectedTotal:  decimal.Zero,
		PaidTotal:      decimal.Zero,
		OverdueTotal:   decimal.Zero,
		UpcomingTotal:  decimal.Zero,
		DeferredTotal:  decimal.Zero,
		RemainingTotal: decimal.Zero,
	}

	breakdowns := make(map[string]*entity.SectionBreakdown)
	var order []string

	for _, inst := range instances {
		summary.InstanceCount++

		if inst.IsPlanned {
			summary.ExpectedTotal = summary.ExpectedTotal.Add(inst.Amount)
		}

		switch inst.Status {
		case entity.InstanceStatusPaid:
			summary.PaidTotal = summary.PaidTotal.Add(inst.Amount)
		case entity.InstanceStatusOverdue:
			summary.OverdueTotal = summary.OverdueTotal.Add(inst.Amount)
		case entity.InstanceStatusDeferred:
			summary.DeferredTotal = summary.DeferredTotal.Add(inst.Amount)
		default:
			summary.UpcomingTotal = summary.UpcomingTotal.Add(inst.Amount)
		}

		bucketKey := unallocatedBucket
		if inst.SectionID != nil {
			bucketKey = inst.SectionID.String()
		}

		bucket, ok := breakdowns[bucketKey]
		if !ok {
			bucket = &entity.SectionBreakdown{
				SectionID: inst.SectionID,
				Name:      unallocatedBucket,
				Expected:  decimal.Zero,
				Actual:    decimal.Zero,
			}
			if inst.SectionID != nil {
				if section, found := sectionsByID[*inst.SectionID]; found {
					bucket.Name = section.Name
					bucket.Color = section.Color
				} else {
					bucket.Name = "Unknown section"
				}
			}
			breakdowns[bucketKey] = bucket
			order = append(order, bucketKey)
		}

		bucket.Count++
		bucket.Actual = bucket.Actual.Add(inst.Amount)
		if inst.IsPlanned {
			bucket.Expected = bucket.Expected.Add(inst.Amount)
		}
	}

	summary.RemainingTotal = summary.ExpectedTotal.Sub(summary.PaidTotal)

	summary.BySection = make([]entity.SectionBreakdown, 0, len(order))
	for _, key := range order {
		summary.BySection = append(summary.BySection, *breakdowns[key])
	}

	return summary
}
