// Package reminder contains the due-bill reminder use cases.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// EnqueueRemindersInput represents the input for reminder scheduling.
type EnqueueRemindersInput struct {
	Now time.Time
}

// EnqueueRemindersOutput represents the output of reminder scheduling.
type EnqueueRemindersOutput struct {
	Enqueued int
}

// EnqueueRemindersUseCase queues one reminder email per upcoming unpaid
// expense whose due day is exactly a configured lead-day count away.
// A dedupe key of (instance, date) keeps repeated runs from double-queuing.
type EnqueueRemindersUseCase struct {
	instanceRepo adapter.InstanceRepository
	settingsRepo adapter.SettingsRepository
	emailQueue   adapter.EmailQueueRepository
}

// NewEnqueueRemindersUseCase creates a new EnqueueRemindersUseCase instance.
func NewEnqueueRemindersUseCase(
	instanceRepo adapter.InstanceRepository,
	settingsRepo adapter.SettingsRepository,
	emailQueue adapter.EmailQueueRepository,
) *EnqueueRemindersUseCase {
	return &EnqueueRemindersUseCase{
		instanceRepo: instanceRepo,
		settingsRepo: settingsRepo,
		emailQueue:   emailQueue,
	}
}

// Execute queues the reminders due as of now.
func (uc *EnqueueRemindersUseCase) Execute(ctx context.Context, input EnqueueRemindersInput) (*EnqueueRemindersOutput, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	output := &EnqueueRemindersOutput{}
	if !settings.ReminderEnabled || settings.ReminderEmail == "" {
		return output, nil
	}

	for _, lead := range settings.ReminderLeadDays {
		dueDate := input.Now.AddDate(0, 0, lead)
		month := valueobject.MonthKeyOf(dueDate)

		instances, err := uc.instanceRepo.FindUnpaidDueOn(ctx, month, dueDate.Day())
		if err != nil {
			return nil, fmt.Errorf("failed to find instances due on %s: %w", dueDate.Format("2006-01-02"), err)
		}

		for _, inst := range instances {
			queued, err := uc.enqueueOne(ctx, settings, inst, dueDate, lead)
			if err != nil {
				// One failed reminder must not block the rest.
				slog.Error("Failed to enqueue reminder",
					"instance_id", inst.ID,
					"error", err,
				)
				continue
			}
			if queued {
				output.Enqueued++
			}
		}
	}

	return output, nil
}

func (uc *EnqueueRemindersUseCase) enqueueOne(
	ctx context.Context,
	settings *entity.Settings,
	inst *entity.Instance,
	dueDate time.Time,
	leadDays int,
) (bool, error) {
	dedupeKey := fmt.Sprintf("reminder:%s:%s", inst.ID, dueDate.Format("2006-01-02"))

	exists, err := uc.emailQueue.ExistsByDedupeKey(ctx, dedupeKey)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	job := entity.NewEmailJob(
		entity.TemplateDueReminder,
		settings.ReminderEmail,
		settings.ReminderName,
		fmt.Sprintf("Upcoming bill: %s", inst.Name),
		dedupeKey,
		map[string]interface{}{
			"instance_name": inst.Name,
			"amount":        inst.Amount.StringFixed(2),
			"currency":      settings.CurrencyCode,
			"due_date":      dueDate.Format("2006-01-02"),
			"lead_days":     leadDays,
		},
	)

	if err := uc.emailQueue.Create(ctx, job); err != nil {
		return false, err
	}

	slog.Debug("Reminder queued",
		"instance_id", inst.ID,
		"due_date", dueDate.Format("2006-01-02"),
		"lead_days", leadDays,
	)
	return true, nil
}
