// Package status contains the automatic status transition use cases.
package status

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

// fakeInstanceRepo mirrors the storage layer's conditional bulk updates
// over an in-memory slice.
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

func (f *fakeInstanceRepo) FindByMonth(_ context.Context, month valueobject.MonthKey) ([]*entity.Instance, error) {
	var out []*entity.Instance
	for _, inst := range f.instances {
		if inst.Month == month {
			out = append(out, inst)
		}
	}
	return out, nil
}

func (f *fakeInstanceRepo) FindByMonthAndKind(_ context.Context, month valueobject.MonthKey, kind entity.TemplateKind) ([]*entity.Instance, error) {
	var out []*entity.Instance
	for _, inst := range f.instances {
		if inst.Month == month && inst.Kind == kind {
			out = append(out, inst)
		}
	}
	return out, nil
}

func (f *fakeInstanceRepo) Update(_ context.Context, inst *entity.Instance) error {
	for i, existing := range f.instances {
		if existing.ID == inst.ID {
			f.instances[i] = inst
			return nil
		}
	}
	return domainerror.ErrInstanceNotFound
}

func (f *fakeInstanceRepo) MarkOverdue(_ context.Context, month valueobject.MonthKey, beforeDay int) (int64, error) {
	var marked int64
	for _, inst := range f.instances {
		if inst.Month == month && inst.Kind == entity.TemplateKindExpense &&
			inst.Status == entity.InstanceStatusUpcoming && inst.DueDay < beforeDay {
			inst.Status = entity.InstanceStatusOverdue
			marked++
		}
	}
	return marked, nil
}

func (f *fakeInstanceRepo) MarkAutoDebitPaid(_ context.Context, month valueobject.MonthKey, throughDay int, paidAt time.Time) (int64, error) {
	var marked int64
	for _, inst := range f.instances {
		if inst.Month == month && inst.Kind == entity.TemplateKindExpense &&
			inst.IsAutoDebit && inst.DueDay <= throughDay &&
			(inst.Status == entity.InstanceStatusUpcoming || inst.Status == entity.InstanceStatusOverdue) {
			inst.MarkPaid(paidAt)
			marked++
		}
	}
	return marked, nil
}

func (f *fakeInstanceRepo) FindUnpaidDueOn(_ context.Context, month valueobject.MonthKey, dueDay int) ([]*entity.Instance, error) {
	var out []*entity.Instance
	for _, inst := range f.instances {
		if inst.Month == month && inst.DueDay == dueDay && inst.Status == entity.InstanceStatusUpcoming {
			out = append(out, inst)
		}
	}
	return out, nil
}

func expenseInstance(month valueobject.MonthKey, name string, dueDay int, amount string, autoDebit bool) *entity.Instance {
	templateID := uuid.New()
	return &entity.Instance{
		ID:          uuid.New(),
		TemplateID:  &templateID,
		Kind:        entity.TemplateKindExpense,
		Month:       month,
		DueDay:      dueDay,
		Name:        name,
		Amount:      decimal.RequireFromString(amount),
		Status:      entity.InstanceStatusUpcoming,
		IsPlanned:   true,
		IsAutoDebit: autoDebit,
	}
}

// February 2026 with rent due on the clamped day 28 (not auto-debit) and
// Netflix due on day 15 (auto-debit), viewed on February 20.
func febScenario() (*fakeInstanceRepo, valueobject.MonthKey, time.Time) {
	month := valueobject.NewMonthKey(2026, time.February)
	now := time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC)
	repo := &fakeInstanceRepo{instances: []*entity.Instance{
		expenseInstance(month, "Rent", 28, "1200", false),
		expenseInstance(month, "Netflix", 15, "17.99", true),
	}}
	return repo, month, now
}

func statusByName(repo *fakeInstanceRepo, name string) entity.InstanceStatus {
	for _, inst := range repo.instances {
		if inst.Name == name {
			return inst.Status
		}
	}
	return ""
}

func TestAutoMarkScenario(t *testing.T) {
	repo, month, now := febScenario()
	overdueUC := NewMarkOverdueUseCase(repo, nil)
	autoPaidUC := NewMarkAutoDebitPaidUseCase(repo, nil)

	if _, err := overdueUC.Execute(context.Background(), MarkOverdueInput{Month: month, Now: now}); err != nil {
		t.Fatalf("overdue marking failed: %v", err)
	}
	if _, err := autoPaidUC.Execute(context.Background(), MarkAutoDebitPaidInput{Month: month, Now: now}); err != nil {
		t.Fatalf("auto-debit marking failed: %v", err)
	}

	// Rent is due on the 28th, after today: still upcoming.
	if got := statusByName(repo, "Rent"); got != entity.InstanceStatusUpcoming {
		t.Errorf("rent status = %s, want upcoming", got)
	}
	// Netflix was due on the 15th and is auto-debit: paid.
	if got := statusByName(repo, "Netflix"); got != entity.InstanceStatusPaid {
		t.Errorf("netflix status = %s, want paid", got)
	}
}

func TestAutoDebitPriorityInEitherOrder(t *testing.T) {
	t.Run("overdue first", func(t *testing.T) {
		month := valueobject.NewMonthKey(2026, time.February)
		now := time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)
		repo := &fakeInstanceRepo{instances: []*entity.Instance{
			expenseInstance(month, "Gym", 15, "35", true),
		}}

		overdueUC := NewMarkOverdueUseCase(repo, nil)
		autoPaidUC := NewMarkAutoDebitPaidUseCase(repo, nil)

		if _, err := overdueUC.Execute(context.Background(), MarkOverdueInput{Month: month, Now: now}); err != nil {
			t.Fatal(err)
		}
		if _, err := autoPaidUC.Execute(context.Background(), MarkAutoDebitPaidInput{Month: month, Now: now}); err != nil {
			t.Fatal(err)
		}

		if got := statusByName(repo, "Gym"); got != entity.InstanceStatusPaid {
			t.Errorf("status = %s, want paid (auto-debit wins over overdue)", got)
		}
	})

	t.Run("auto-debit first", func(t *testing.T) {
		month := valueobject.NewMonthKey(2026, time.February)
		now := time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)
		repo := &fakeInstanceRepo{instances: []*entity.Instance{
			expenseInstance(month, "Gym", 15, "35", true),
		}}

		overdueUC := NewMarkOverdueUseCase(repo, nil)
		autoPaidUC := NewMarkAutoDebitPaidUseCase(repo, nil)

		if _, err := autoPaidUC.Execute(context.Background(), MarkAutoDebitPaidInput{Month: month, Now: now}); err != nil {
			t.Fatal(err)
		}
		if _, err := overdueUC.Execute(context.Background(), MarkOverdueInput{Month: month, Now: now}); err != nil {
			t.Fatal(err)
		}

		if got := statusByName(repo, "Gym"); got != entity.InstanceStatusPaid {
			t.Errorf("status = %s, want paid (paid never reverts to overdue)", got)
		}
	})
}

func TestAutoMarkIdempotence(t *testing.T) {
	repo, month, now := febScenario()
	overdueUC := NewMarkOverdueUseCase(repo, nil)
	autoPaidUC := NewMarkAutoDebitPaidUseCase(repo, nil)

	for run := 0; run < 2; run++ {
		if _, err := overdueUC.Execute(context.Background(), MarkOverdueInput{Month: month, Now: now}); err != nil {
			t.Fatal(err)
		}
	}
	output, err := autoPaidUC.Execute(context.Background(), MarkAutoDebitPaidInput{Month: month, Now: now})
	if err != nil {
		t.Fatal(err)
	}
	if output.Marked != 1 {
		t.Fatalf("first auto-debit run marked %d, want 1", output.Marked)
	}

	// Second run over settled state changes nothing.
	output, err = autoPaidUC.Execute(context.Background(), MarkAutoDebitPaidInput{Month: month, Now: now})
	if err != nil {
		t.Fatal(err)
	}
	if output.Marked != 0 {
		t.Errorf("repeat auto-debit run marked %d, want 0", output.Marked)
	}

	output2, err := overdueUC.Execute(context.Background(), MarkOverdueInput{Month: month, Now: now})
	if err != nil {
		t.Fatal(err)
	}
	if output2.Marked != 0 {
		t.Errorf("repeat overdue run marked %d, want 0", output2.Marked)
	}
}

func TestAutoMarkNeverTouchesSettledInstances(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	now := time.Date(2026, time.February, 25, 0, 0, 0, 0, time.UTC)

	paid := expenseInstance(month, "Paid bill", 10, "50", false)
	paid.Status = entity.InstanceStatusPaid
	deferred := expenseInstance(month, "Deferred bill", 10, "80", true)
	deferred.Status = entity.InstanceStatusDeferred

	repo := &fakeInstanceRepo{instances: []*entity.Instance{paid, deferred}}

	if _, err := NewMarkOverdueUseCase(repo, nil).Execute(context.Background(), MarkOverdueInput{Month: month, Now: now}); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMarkAutoDebitPaidUseCase(repo, nil).Execute(context.Background(), MarkAutoDebitPaidInput{Month: month, Now: now}); err != nil {
		t.Fatal(err)
	}

	if paid.Status != entity.InstanceStatusPaid {
		t.Errorf("paid instance changed to %s", paid.Status)
	}
	if deferred.Status != entity.InstanceStatusDeferred {
		t.Errorf("deferred instance changed to %s (deferred is manual-only)", deferred.Status)
	}
}

func TestAutoMarkSkipsNonCurrentMonths(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.January)
	// It is February now; January is history and must stay as it was.
	now := time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)
	repo := &fakeInstanceRepo{instances: []*entity.Instance{
		expenseInstance(month, "Old bill", 5, "100", true),
	}}

	overdueOutput, err := NewMarkOverdueUseCase(repo, nil).Execute(context.Background(), MarkOverdueInput{Month: month, Now: now})
	if err != nil {
		t.Fatal(err)
	}
	autoPaidOutput, err := NewMarkAutoDebitPaidUseCase(repo, nil).Execute(context.Background(), MarkAutoDebitPaidInput{Month: month, Now: now})
	if err != nil {
		t.Fatal(err)
	}

	if overdueOutput.Marked != 0 || autoPaidOutput.Marked != 0 {
		t.Error("past month was modified by the automatic engine")
	}
	if got := statusByName(repo, "Old bill"); got != entity.InstanceStatusUpcoming {
		t.Errorf("past instance status = %s, want untouched upcoming", got)
	}
}

func TestDueTodayIsNotOverdue(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	now := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeInstanceRepo{instances: []*entity.Instance{
		expenseInstance(month, "Due today", 15, "20", false),
	}}

	if _, err := NewMarkOverdueUseCase(repo, nil).Execute(context.Background(), MarkOverdueInput{Month: month, Now: now}); err != nil {
		t.Fatal(err)
	}

	// Overdue means strictly before today, not on it.
	if got := statusByName(repo, "Due today"); got != entity.InstanceStatusUpcoming {
		t.Errorf("status = %s, want upcoming on the due day itself", got)
	}
}
