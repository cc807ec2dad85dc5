// Package reminder contains the due-bill reminder use cases.
package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// fakeInstanceRepo serves unpaid instances keyed by (month, due day).
type fakeInstanceRepo struct {
	instances []*entity.Instance
}

func (f *fakeInstanceRepo) Create(_ context.Context, inst *entity.Instance) error {
	f.instances = append(f.instances, inst)
	return nil
}

func (f *fakeInstanceRepo) UpsertMissing(_ context.Context, instances []*entity.Instance) (int64, error) {
	f.instances = append(f.instances, instances...)
	return int64(len(instances)), nil
}

func (f *fakeInstanceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Instance, error) {
	for _, inst := range f.instances {
		if inst.ID == id {
			return inst, nil
		}
	}
	return nil, domainerror.ErrInstanceNotFound
}

func (f *fakeInstanceRepo) FindByMonth(_ context.Context, _ valueobject.MonthKey) ([]*entity.Instance, error) {
	return nil, nil
}

func (f *fakeInstanceRepo) FindByMonthAndKind(_ context.Context, _ valueobject.MonthKey, _ entity.TemplateKind) ([]*entity.Instance, error) {
	return nil, nil
}

func (f *fakeInstanceRepo) Update(_ context.Context, _ *entity.Instance) error { return nil }

func (f *fakeInstanceRepo) MarkOverdue(_ context.Context, _ valueobject.MonthKey, _ int) (int64, error) {
	return 0, nil
}

func (f *fakeInstanceRepo) MarkAutoDebitPaid(_ context.Context, _ valueobject.MonthKey, _ int, _ time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeInstanceRepo) FindUnpaidDueOn(_ context.Context, month valueobject.MonthKey, dueDay int) ([]*entity.Instance, error) {
	var out []*entity.Instance
	for _, inst := range f.instances {
		if inst.Month == month && inst.DueDay == dueDay &&
			inst.Kind == entity.TemplateKindExpense && inst.Status == entity.InstanceStatusUpcoming {
			out = append(out, inst)
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	return f.settings, nil
}

// fakeEmailQueue records created jobs and answers dedupe lookups from them.
type fakeEmailQueue struct {
	jobs []*entity.EmailJob
}

func (f *fakeEmailQueue) Create(_ context.Context, job *entity.EmailJob) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeEmailQueue) GetPendingJobs(_ context.Context, _ int) ([]*entity.EmailJob, error) {
	return f.jobs, nil
}

func (f *fakeEmailQueue) Update(_ context.Context, _ *entity.EmailJob) error { return nil }

func (f *fakeEmailQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	for _, job := range f.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return nil, domainerror.ErrEmailJobNotFound
}

func (f *fakeEmailQueue) ExistsByDedupeKey(_ context.Context, dedupeKey string) (bool, error) {
	for _, job := range f.jobs {
		if job.DedupeKey == dedupeKey {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmailQueue) DeleteOldSentJobs(_ context.Context, _ int) (int64, error) { return 0, nil }

func reminderSettings(leadDays ...int) *entity.Settings {
	s := entity.DefaultSettings()
	s.ReminderEnabled = true
	s.ReminderLeadDays = leadDays
	s.ReminderEmail = "me@example.com"
	s.ReminderName = "Me"
	return s
}

func unpaidExpense(month valueobject.MonthKey, dueDay int, name string) *entity.Instance {
	return &entity.Instance{
		ID:        uuid.New(),
		Kind:      entity.TemplateKindExpense,
		Month:     month,
		DueDay:    dueDay,
		Name:      name,
		Amount:    decimal.RequireFromString("50"),
		Status:    entity.InstanceStatusUpcoming,
		IsPlanned: true,
	}
}

func TestEnqueueRemindersPerLeadDay(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	now := time.Date(2026, time.February, 10, 8, 0, 0, 0, time.UTC)

	repo := &fakeInstanceRepo{instances: []*entity.Instance{
		unpaidExpense(month, 11, "Water"),       // lead 1
		unpaidExpense(month, 13, "Electricity"), // lead 3
		unpaidExpense(month, 20, "Rent"),        // outside both leads
	}}
	queue := &fakeEmailQueue{}

	uc := NewEnqueueRemindersUseCase(repo, &fakeSettingsRepo{settings: reminderSettings(3, 1)}, queue)
	output, err := uc.Execute(context.Background(), EnqueueRemindersInput{Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Enqueued != 2 {
		t.Fatalf("enqueued = %d, want 2", output.Enqueued)
	}
	for _, job := range queue.jobs {
		if job.TemplateType != entity.TemplateDueReminder {
			t.Errorf("job template = %s, want due_reminder", job.TemplateType)
		}
		if job.RecipientEmail != "me@example.com" {
			t.Errorf("recipient = %s, want me@example.com", job.RecipientEmail)
		}
	}
}

func TestEnqueueRemindersDeduplicates(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	now := time.Date(2026, time.February, 10, 8, 0, 0, 0, time.UTC)

	repo := &fakeInstanceRepo{instances: []*entity.Instance{
		unpaidExpense(month, 11, "Water"),
	}}
	queue := &fakeEmailQueue{}
	uc := NewEnqueueRemindersUseCase(repo, &fakeSettingsRepo{settings: reminderSettings(1)}, queue)

	for i := 0; i < 3; i++ {
		if _, err := uc.Execute(context.Background(), EnqueueRemindersInput{Now: now}); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
	}

	if len(queue.jobs) != 1 {
		t.Errorf("job count = %d, want 1 (repeated runs must not double-queue)", len(queue.jobs))
	}
}

func TestEnqueueRemindersDisabled(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	now := time.Date(2026, time.February, 10, 8, 0, 0, 0, time.UTC)

	repo := &fakeInstanceRepo{instances: []*entity.Instance{
		unpaidExpense(month, 11, "Water"),
	}}
	queue := &fakeEmailQueue{}

	settings := reminderSettings(1)
	settings.ReminderEnabled = false

	uc := NewEnqueueRemindersUseCase(repo, &fakeSettingsRepo{settings: settings}, queue)
	output, err := uc.Execute(context.Background(), EnqueueRemindersInput{Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Enqueued != 0 || len(queue.jobs) != 0 {
		t.Errorf("disabled reminders must queue nothing")
	}
}

func TestEnqueueRemindersMonthRollover(t *testing.T) {
	// Lead days crossing a month boundary look up the next month's key.
	march := valueobject.NewMonthKey(2026, time.March)
	now := time.Date(2026, time.February, 27, 8, 0, 0, 0, time.UTC)

	repo := &fakeInstanceRepo{instances: []*entity.Instance{
		unpaidExpense(march, 2, "Rent"),
	}}
	queue := &fakeEmailQueue{}

	uc := NewEnqueueRemindersUseCase(repo, &fakeSettingsRepo{settings: reminderSettings(3)}, queue)
	output, err := uc.Execute(context.Background(), EnqueueRemindersInput{Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Enqueued != 1 {
		t.Errorf("enqueued = %d, want 1 (due date rolls into next month)", output.Enqueued)
	}
}
