// Package summary contains the month aggregation use cases.
package summary

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

// fakeInstanceRepo serves a fixed instance set; summaries are pure reads.
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

func (f *fakeInstanceRepo) Update(_ context.Context, _ *entity.Instance) error { return nil }

func (f *fakeInstanceRepo) MarkOverdue(_ context.Context, _ valueobject.MonthKey, _ int) (int64, error) {
	return 0, nil
}

func (f *fakeInstanceRepo) MarkAutoDebitPaid(_ context.Context, _ valueobject.MonthKey, _ int, _ time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeInstanceRepo) FindUnpaidDueOn(_ context.Context, _ valueobject.MonthKey, _ int) ([]*entity.Instance, error) {
	return nil, nil
}

type fakeSectionRepo struct {
	sections []*entity.Section
}

func (f *fakeSectionRepo) FindAll(_ context.Context) ([]*entity.Section, error) {
	return f.sections, nil
}

func (f *fakeSectionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Section, error) {
	for _, s := range f.sections {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domainerror.ErrTemplateNotFound
}

type fakeSettingsRepo struct{}

func (f *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	s := entity.DefaultSettings()
	s.CurrencyCode = "EUR"
	return s, nil
}

func instanceWith(month valueobject.MonthKey, kind entity.TemplateKind, amount string, status entity.InstanceStatus, planned bool, sectionID *uuid.UUID) *entity.Instance {
	return &entity.Instance{
		ID:        uuid.New(),
		Kind:      kind,
		Month:     month,
		DueDay:    10,
		Amount:    decimal.RequireFromString(amount),
		Status:    status,
		IsPlanned: planned,
		SectionID: sectionID,
	}
}

func TestMonthSummaryPlannedVsAdHoc(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	repo := &fakeInstanceRepo{instances: []*entity.Instance{
		instanceWith(month, entity.TemplateKindExpense, "1200", entity.InstanceStatusUpcoming, true, nil),
		instanceWith(month, entity.TemplateKindExpense, "17.99", entity.InstanceStatusPaid, true, nil),
		// Ad-hoc entry: actual, never expected.
		instanceWith(month, entity.TemplateKindExpense, "42.50", entity.InstanceStatusPaid, false, nil),
	}}

	uc := NewMonthSummaryUseCase(repo, &fakeSectionRepo{}, &fakeSettingsRepo{}, nil)
	output, err := uc.Execute(context.Background(), MonthSummaryInput{Month: month})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := output.Summary
	if want := decimal.RequireFromString("1217.99"); !s.ExpectedTotal.Equal(want) {
		t.Errorf("expected total = %s, want %s (ad-hoc excluded)", s.ExpectedTotal, want)
	}
	if want := decimal.RequireFromString("60.49"); !s.PaidTotal.Equal(want) {
		t.Errorf("paid total = %s, want %s (ad-hoc included)", s.PaidTotal, want)
	}
	if want := decimal.RequireFromString("1200"); !s.UpcomingTotal.Equal(want) {
		t.Errorf("upcoming total = %s, want %s", s.UpcomingTotal, want)
	}
	if want := decimal.RequireFromString("1157.50"); !s.RemainingTotal.Equal(want) {
		t.Errorf("remaining total = %s, want %s", s.RemainingTotal, want)
	}
	if s.InstanceCount != 3 {
		t.Errorf("instance count = %d, want 3", s.InstanceCount)
	}
}

func TestMonthSummaryStatusBuckets(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.March)
	repo := &fakeInstanceRepo{instances: []*entity.Instance{
		instanceWith(month, entity.TemplateKindExpense, "100", entity.InstanceStatusPaid, true, nil),
		instanceWith(month, entity.TemplateKindExpense, "200", entity.InstanceStatusOverdue, true, nil),
		instanceWith(month, entity.TemplateKindExpense, "300", entity.InstanceStatusUpcoming, true, nil),
		instanceWith(month, entity.TemplateKindExpense, "400", entity.InstanceStatusDeferred, true, nil),
	}}

	uc := NewMonthSummaryUseCase(repo, &fakeSectionRepo{}, &fakeSettingsRepo{}, nil)
	output, err := uc.Execute(context.Background(), MonthSummaryInput{Month: month})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := output.Summary
	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"paid", s.PaidTotal, "100"},
		{"overdue", s.OverdueTotal, "200"},
		{"upcoming", s.UpcomingTotal, "300"},
		{"deferred", s.DeferredTotal, "400"},
		{"expected", s.ExpectedTotal, "1000"},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("%s total = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestMonthSummarySectionBreakdown(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	housing := entity.NewSection("Housing", "#d62828", "home")
	subs := entity.NewSection("Subscriptions", "#003049", "tv")

	repo := &fakeInstanceRepo{instances: []*entity.Instance{
		instanceWith(month, entity.TemplateKindExpense, "1200", entity.InstanceStatusUpcoming, true, &housing.ID),
		instanceWith(month, entity.TemplateKindExpense, "17.99", entity.InstanceStatusPaid, true, &subs.ID),
		instanceWith(month, entity.TemplateKindExpense, "9.99", entity.InstanceStatusPaid, true, &subs.ID),
		instanceWith(month, entity.TemplateKindExpense, "30", entity.InstanceStatusPaid, false, nil),
	}}

	uc := NewMonthSummaryUseCase(repo, &fakeSectionRepo{sections: []*entity.Section{housing, subs}}, &fakeSettingsRepo{}, nil)
	output, err := uc.Execute(context.Background(), MonthSummaryInput{Month: month})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buckets := make(map[string]entity.SectionBreakdown)
	for _, b := range output.Summary.BySection {
		buckets[b.Name] = b
	}

	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}
	if got := buckets["Housing"]; got.Count != 1 || !got.Actual.Equal(decimal.RequireFromString("1200")) {
		t.Errorf("housing bucket = %+v", got)
	}
	if got := buckets["Subscriptions"]; got.Count != 2 || !got.Actual.Equal(decimal.RequireFromString("27.98")) {
		t.Errorf("subscriptions bucket = %+v", got)
	}
	unallocated := buckets["Unallocated"]
	if unallocated.Count != 1 || !unallocated.Actual.Equal(decimal.RequireFromString("30")) {
		t.Errorf("unallocated bucket = %+v", unallocated)
	}
	if !unallocated.Expected.IsZero() {
		t.Errorf("ad-hoc bucket expected = %s, want 0", unallocated.Expected)
	}
}

func TestCashFlowBalance(t *testing.T) {
	month := valueobject.NewMonthKey(2026, time.February)
	repo := &fakeInstanceRepo{instances: []*entity.Instance{
		instanceWith(month, entity.TemplateKindIncome, "3000", entity.InstanceStatusUpcoming, true, nil),
		instanceWith(month, entity.TemplateKindIncome, "500", entity.InstanceStatusUpcoming, true, nil),
		instanceWith(month, entity.TemplateKindExpense, "1200", entity.InstanceStatusUpcoming, true, nil),
		instanceWith(month, entity.TemplateKindExpense, "17.99", entity.InstanceStatusPaid, true, nil),
	}}

	uc := NewCashFlowUseCase(repo, &fakeSettingsRepo{}, nil)
	output, err := uc.Execute(context.Background(), CashFlowInput{Month: month})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flow := output.CashFlow
	if want := decimal.RequireFromString("3500"); !flow.IncomeTotal.Equal(want) {
		t.Errorf("income total = %s, want %s", flow.IncomeTotal, want)
	}
	// Expenses count regardless of status: committed obligations.
	if want := decimal.RequireFromString("1217.99"); !flow.ExpenseTotal.Equal(want) {
		t.Errorf("expense total = %s, want %s", flow.ExpenseTotal, want)
	}
	if want := decimal.RequireFromString("2282.01"); !flow.Balance.Equal(want) {
		t.Errorf("balance = %s, want %s", flow.Balance, want)
	}
}

func TestCashFlowEmptyMonth(t *testing.T) {
	uc := NewCashFlowUseCase(&fakeInstanceRepo{}, &fakeSettingsRepo{}, nil)
	output, err := uc.Execute(context.Background(), CashFlowInput{Month: valueobject.NewMonthKey(2026, time.July)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flow := output.CashFlow
	if !flow.IncomeTotal.IsZero() || !flow.ExpenseTotal.IsZero() || !flow.Balance.IsZero() {
		t.Errorf("empty month produced non-zero flow: %+v", flow)
	}
}
