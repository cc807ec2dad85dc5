// Package generation contains the monthly instance generation use cases.
package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// GenerateInstancesInput represents the input for instance generation.
type GenerateInstancesInput struct {
	Month valueobject.MonthKey
	Kind  entity.TemplateKind
}

// GenerateInstancesOutput represents the output of instance generation.
type GenerateInstancesOutput struct {
	// Generated is the number of rows actually inserted. Zero on a repeat
	// call for an already-generated month.
	Generated int64
	// SkippedTemplates counts templates passed over because their
	// recurrence data was unusable.
	SkippedTemplates int
}

// GenerateInstancesUseCase materializes the instances a month should
// contain from the template set. It is idempotent and safe to invoke on
// every page view: existing rows are never touched, manual status edits
// survive regeneration, and concurrent calls collapse at the storage layer.
type GenerateInstancesUseCase struct {
	templateRepo adapter.TemplateRepository
	instanceRepo adapter.InstanceRepository
	cache        adapter.SummaryCache
}

// NewGenerateInstancesUseCase creates a new GenerateInstancesUseCase instance.
func NewGenerateInstancesUseCase(
	templateRepo adapter.TemplateRepository,
	instanceRepo adapter.InstanceRepository,
	cache adapter.SummaryCache,
) *GenerateInstancesUseCase {
	return &GenerateInstancesUseCase{
		templateRepo: templateRepo,
		instanceRepo: instanceRepo,
		cache:        cache,
	}
}

// Execute performs the generation for one month and kind.
func (uc *GenerateInstancesUseCase) Execute(ctx context.Context, input GenerateInstancesInput) (*GenerateInstancesOutput, error) {
	templates, err := uc.templateRepo.FindActiveByKind(ctx, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	existing, err := uc.instanceRepo.FindByMonthAndKind(ctx, input.Month, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing instances: %w", err)
	}

	missing, skipped := uc.computeMissing(input.Month, templates, existing)

	output := &GenerateInstancesOutput{SkippedTemplates: skipped}
	if len(missing) == 0 {
		return output, nil
	}

	inserted, err := uc.instanceRepo.UpsertMissing(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert instances: %w", err)
	}
	output.Generated = inserted

	if inserted > 0 && uc.cache != nil {
		if err := uc.cache.InvalidateMonth(ctx, input.Month); err != nil {
			slog.Warn("Failed to invalidate summary cache after generation",
				"month", input.Month.String(),
				"error", err,
			)
		}
	}

	return output, nil
}

// computeMissing folds the template set against the existing rows and
// returns the instances that should exist but do not yet.
//
// Dedup rules: a monthly, yearly or one-time template produces at most one
// row per month, so any existing row for the template blocks regeneration
// even if its due day has since been edited on the template. A weekly
// template produces one row per occurrence, keyed by (template, due day).
func (uc *GenerateInstancesUseCase) computeMissing(
	month valueobject.MonthKey,
	templates []*entity.Template,
	existing []*entity.Instance,
) ([]*entity.Instance, int) {
	byTemplate := make(map[uuid.UUID]map[int]bool)
	for _, inst := range existing {
		if inst.TemplateID == nil {
			continue
		}
		if byTemplate[*inst.TemplateID] == nil {
			byTemplate[*inst.TemplateID] = make(map[int]bool)
		}
		byTemplate[*inst.TemplateID][inst.DueDay] = true
	}

	var missing []*entity.Instance
	skipped := 0

	for _, tpl := range templates {
		days, err := occurrencesInMonth(tpl, month)
		if err != nil {
			// One bad template must not block the rest of the month.
			slog.Warn("Skipping template with unusable recurrence data",
				"template_id", tpl.ID,
				"name", tpl.Name,
				"recurrence", string(tpl.Recurrence),
				"error", err,
			)
			skipped++
			continue
		}

		existingDays := byTemplate[tpl.ID]
		for _, day := range days {
			if existingDays != nil {
				if tpl.Recurrence != entity.RecurrenceWeekly {
					break
				}
				if existingDays[day] {
					continue
				}
			}
			missing = append(missing, entity.NewInstanceFromTemplate(tpl, month, day))
		}
	}

	return missing, skipped
}
