// Package instance contains instance-related use cases for listing and
// manual status transitions.
package instance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// fakeInstanceRepo is an in-memory stand-in keyed by instance ID.
type fakeInstanceRepo struct {
	instances map[uuid.UUID]*entity.Instance
	updates   int
}

func newFakeInstanceRepo(instances ...*entity.Instance) *fakeInstanceRepo {
	repo := &fakeInstanceRepo{instances: make(map[uuid.UUID]*entity.Instance)}
	for _, inst := range instances {
		repo.instances[inst.ID] = inst
	}
	return repo
}

func (f *fakeInstanceRepo) Create(_ context.Context, inst *entity.Instance) error {
	f.instances[inst.ID] = inst
	return nil
}

func (f *fakeInstanceRepo) UpsertMissing(_ context.Context, instances []*entity.Instance) (int64, error) {
	for _, inst := range instances {
		f.instances[inst.ID] = inst
	}
	return int64(len(instances)), nil
}

func (f *fakeInstanceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Instance, error) {
	inst, ok := f.instances[id]
	if !ok {
		return nil, domainerror.ErrInstanceNotFound
	}
	return inst, nil
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
	f.instances[inst.ID] = inst
	f.updates++
	return nil
}

func (f *fakeInstanceRepo) MarkOverdue(_ context.Context, _ valueobject.MonthKey, _ int) (int64, error) {
	return 0, nil
}

func (f *fakeInstanceRepo) MarkAutoDebitPaid(_ context.Context, _ valueobject.MonthKey, _ int, _ time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeInstanceRepo) FindUnpaidDueOn(_ context.Context, _ valueobject.MonthKey, _ int) ([]*entity.Instance, error) {
	return nil, nil
}

func upcomingInstance(month valueobject.MonthKey) *entity.Instance {
	return &entity.Instance{
		ID:        uuid.New(),
		Kind:      entity.TemplateKindExpense,
		Month:     month,
		DueDay:    15,
		Name:      "Electricity",
		Amount:    decimal.RequireFromString("85.40"),
		Status:    entity.InstanceStatusUpcoming,
		IsPlanned: true,
	}
}

func TestMarkPaid(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	inst := upcomingInstance(month)
	repo := newFakeInstanceRepo(inst)
	now := time.Date(2026, time.February, 14, 9, 0, 0, 0, time.UTC)

	uc := NewMarkPaidUseCase(repo, nil)
	output, err := uc.Execute(context.Background(), MarkPaidInput{InstanceID: inst.ID, Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Instance.Status != entity.InstanceStatusPaid {
		t.Errorf("status = %s, want paid", output.Instance.Status)
	}
	if output.Instance.PaidAt == nil || !output.Instance.PaidAt.Equal(now) {
		t.Errorf("paid_at = %v, want %v", output.Instance.PaidAt, now)
	}
}

func TestMarkPaidOverdueInstance(t *testing.T) {
	// Paying an overdue bill is the normal recovery path.
	month := valueobject.NewMonthKey(2026, time.February)
	inst := upcomingInstance(month)
	inst.Status = entity.InstanceStatusOverdue
	repo := newFakeInstanceRepo(inst)

	uc := NewMarkPaidUseCase(repo, nil)
	output, err := uc.Execute(context.Background(), MarkPaidInput{InstanceID: inst.ID, Now: time.Now().UTC()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Instance.Status != entity.InstanceStatusPaid {
		t.Errorf("status = %s, want paid", output.Instance.Status)
	}
}

func TestMarkPaidAlreadyPaid(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	inst := upcomingInstance(month)
	inst.MarkPaid(time.Now().UTC())
	repo := newFakeInstanceRepo(inst)

	uc := NewMarkPaidUseCase(repo, nil)
	_, err := uc.Execute(context.Background(), MarkPaidInput{InstanceID: inst.ID, Now: time.Now().UTC()})
	if !errors.Is(err, domainerror.ErrInstanceAlreadySettled) {
		t.Errorf("expected ErrInstanceAlreadySettled, got %v", err)
	}
}

func TestMarkPaidNotFound(t *testing.T) {
	repo := newFakeInstanceRepo()
	uc := NewMarkPaidUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), MarkPaidInput{InstanceID: uuid.New(), Now: time.Now().UTC()})
	if !errors.Is(err, domainerror.ErrInstanceNotFound) {
		t.Errorf("expected ErrInstanceNotFound, got %v", err)
	}
}

func TestDeferInstance(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	inst := upcomingInstance(month)
	repo := newFakeInstanceRepo(inst)

	uc := NewDeferInstanceUseCase(repo, nil)
	output, err := uc.Execute(context.Background(), DeferInstanceInput{InstanceID: inst.ID, Now: time.Now().UTC()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Instance.Status != entity.InstanceStatusDeferred {
		t.Errorf("status = %s, want deferred", output.Instance.Status)
	}
	if output.Instance.PaidAt != nil {
		t.Errorf("paid_at should stay nil on deferral")
	}
}

func TestDeferSettledInstance(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	inst := upcomingInstance(month)
	inst.MarkPaid(time.Now().UTC())
	repo := newFakeInstanceRepo(inst)

	uc := NewDeferInstanceUseCase(repo, nil)
	_, err := uc.Execute(context.Background(), DeferInstanceInput{InstanceID: inst.ID, Now: time.Now().UTC()})
	if !errors.Is(err, domainerror.ErrInstanceAlreadySettled) {
		t.Errorf("expected ErrInstanceAlreadySettled, got %v", err)
	}
}

func TestReopenPaidInstance(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	inst := upcomingInstance(month)
	inst.MarkPaid(time.Now().UTC())
	repo := newFakeInstanceRepo(inst)

	uc := NewReopenInstanceUseCase(repo, nil)
	output, err := uc.Execute(context.Background(), ReopenInstanceInput{InstanceID: inst.ID, Now: time.Now().UTC()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Instance.Status != entity.InstanceStatusUpcoming {
		t.Errorf("status = %s, want upcoming", output.Instance.Status)
	}
	if output.Instance.PaidAt != nil {
		t.Errorf("paid_at should be cleared on reopen")
	}
}

func TestReopenUnsettledInstance(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	inst := upcomingInstance(month)
	repo := newFakeInstanceRepo(inst)

	uc := NewReopenInstanceUseCase(repo, nil)
	_, err := uc.Execute(context.Background(), ReopenInstanceInput{InstanceID: inst.ID, Now: time.Now().UTC()})
	if !errors.Is(err, domainerror.ErrInstanceNotSettled) {
		t.Errorf("expected ErrInstanceNotSettled, got %v", err)
	}
}

func TestCreateAdHocInstance(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	repo := newFakeInstanceRepo()

	uc := NewCreateAdHocInstanceUseCase(repo, nil)
	output, err := uc.Execute(context.Background(), CreateAdHocInstanceInput{
		Month:  month,
		Kind:   entity.TemplateKindExpense,
		DueDay: 20,
		Name:   "Car repair",
		Amount: decimal.RequireFromString("340.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inst := output.Instance
	if inst.TemplateID != nil {
		t.Errorf("ad-hoc instance must have nil template ID")
	}
	if inst.IsPlanned {
		t.Errorf("ad-hoc instance must be unplanned")
	}
	if inst.Status != entity.InstanceStatusUpcoming {
		t.Errorf("status = %s, want upcoming", inst.Status)
	}
	if len(repo.instances) != 1 {
		t.Errorf("instance was not persisted")
	}
}

func TestCreateAdHocInstanceClampsDueDay(t *testing.T) {
	// Day 31 in February lands on the last day of the month.
	month := valueobject.NewMonthKey(2026, time.February)
	repo := newFakeInstanceRepo()

	uc := NewCreateAdHocInstanceUseCase(repo, nil)
	output, err := uc.Execute(context.Background(), CreateAdHocInstanceInput{
		Month:  month,
		Kind:   entity.TemplateKindExpense,
		DueDay: 31,
		Name:   "End of month",
		Amount: decimal.RequireFromString("10"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Instance.DueDay != 28 {
		t.Errorf("due day = %d, want 28", output.Instance.DueDay)
	}
}

func TestCreateAdHocInstanceValidation(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)

	tests := []struct {
		name    string
		input   CreateAdHocInstanceInput
		wantErr error
	}{
		{
			name: "invalid kind",
			input: CreateAdHocInstanceInput{
				Month: month, Kind: "transfer", DueDay: 5,
				Name: "x", Amount: decimal.RequireFromString("1"),
			},
			wantErr: domainerror.ErrInvalidInstanceKind,
		},
		{
			name: "due day too low",
			input: CreateAdHocInstanceInput{
				Month: month, Kind: entity.TemplateKindExpense, DueDay: 0,
				Name: "x", Amount: decimal.RequireFromString("1"),
			},
			wantErr: domainerror.ErrInvalidDueDay,
		},
		{
			name: "due day too high",
			input: CreateAdHocInstanceInput{
				Month: month, Kind: entity.TemplateKindExpense, DueDay: 32,
				Name: "x", Amount: decimal.RequireFromString("1"),
			},
			wantErr: domainerror.ErrInvalidDueDay,
		},
		{
			name: "negative amount",
			input: CreateAdHocInstanceInput{
				Month: month, Kind: entity.TemplateKindIncome, DueDay: 5,
				Name: "x", Amount: decimal.RequireFromString("-1"),
			},
			wantErr: domainerror.ErrInvalidInstanceAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateAdHocInstanceUseCase(newFakeInstanceRepo(), nil)
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestListInstancesKindFilter(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	expense := upcomingInstance(month)
	income := upcomingInstance(month)
	income.Kind = entity.TemplateKindIncome
	repo := newFakeInstanceRepo(expense, income)

	uc := NewListInstancesUseCase(repo)

	all, err := uc.Execute(context.Background(), ListInstancesInput{Month: month})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Instances) != 2 {
		t.Errorf("unfiltered count = %d, want 2", len(all.Instances))
	}

	kind := entity.TemplateKindIncome
	filtered, err := uc.Execute(context.Background(), ListInstancesInput{Month: month, Kind: &kind})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered.Instances) != 1 || filtered.Instances[0].Kind != entity.TemplateKindIncome {
		t.Errorf("kind filter returned wrong set: %+v", filtered.Instances)
	}
}
