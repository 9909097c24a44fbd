// Package ledger contains the cash-flow projection use cases.
package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	"github.com/barber-manager/backend/internal/integration/persistence/memory"
)

type ledgerFixture struct {
	appointments adapter.AppointmentRepository
	expenses     adapter.ExpenseRepository
	project      *ProjectLedgerUseCase
}

func newLedgerFixture() *ledgerFixture {
	appointments := memory.NewAppointmentStore()
	expenses := memory.NewExpenseStore()
	return &ledgerFixture{
		appointments: appointments,
		expenses:     expenses,
		project:      NewProjectLedgerUseCase(appointments, expenses),
	}
}

func (f *ledgerFixture) addAppointment(t *testing.T, client, barber, service, payment string, price string, schedule time.Time, completed bool) {
	t.Helper()
	snapshot := entity.ServiceSnapshot{
		Description:     service,
		Price:           decimal.RequireFromString(price),
		DurationMinutes: 30,
	}
	a := entity.NewAppointment(schedule, client, barber, payment, []entity.ServiceSnapshot{snapshot})
	if completed {
		a.Complete()
	}
	if err := f.appointments.Create(context.Background(), a); err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
}

func (f *ledgerFixture) addExpense(t *testing.T, description, amount string, date time.Time) {
	t.Helper()
	e := entity.NewExpense(description, decimal.RequireFromString(amount), date, entity.ExpenseCategoryMisc)
	if err := f.expenses.Create(context.Background(), e); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}
}

func TestProjectLedger_OnlyCompletedAppointmentsFlowIn(t *testing.T) {
	f := newLedgerFixture()
	day := time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local)

	f.addAppointment(t, "João", "Carlos", "Corte", entity.PaymentPix, "30", day, true)
	f.addAppointment(t, "Pedro", "Carlos", "Corte", entity.PaymentPix, "30", day.Add(time.Hour), false)

	output, err := f.project.Execute(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(output.Entries))
	}
	entry := output.Entries[0]
	if entry.Kind != entity.LedgerInflow {
		t.Errorf("expected inflow, got %s", entry.Kind)
	}
	if entry.Description != "Corte" {
		t.Errorf("expected description Corte, got %q", entry.Description)
	}
	if entry.Detail != "Cliente: João | Barbeiro: Carlos" {
		t.Errorf("unexpected detail: %q", entry.Detail)
	}
	if entry.AmountText != "+ R$ 30,00" {
		t.Errorf("unexpected amount text: %q", entry.AmountText)
	}
}

func TestProjectLedger_RunningTotal(t *testing.T) {
	f := newLedgerFixture()
	day := time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local)

	f.addAppointment(t, "João", "Carlos", "Corte", entity.PaymentPix, "50", day, true)
	f.addAppointment(t, "Pedro", "Carlos", "Barba", entity.PaymentCash, "20", day.Add(time.Hour), true)
	f.addExpense(t, "Lâminas", "15.50", day)

	output, err := f.project.Execute(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(output.Entries))
	}
	if !output.Total.Equal(decimal.RequireFromString("54.5")) {
		t.Errorf("expected total 54.50, got %s", output.Total)
	}
	if output.TotalText != "R$ 54,50" {
		t.Errorf("unexpected total text: %q", output.TotalText)
	}
}

func TestProjectLedger_SortedMostRecentFirst(t *testing.T) {
	f := newLedgerFixture()

	f.addAppointment(t, "Antigo", "Carlos", "Corte", entity.PaymentPix, "30",
		time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local), true)
	f.addAppointment(t, "Recente", "Carlos", "Corte", entity.PaymentPix, "30",
		time.Date(2025, 3, 20, 10, 0, 0, 0, time.Local), true)
	f.addExpense(t, "Aluguel", "800", time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local))

	output, err := f.project.Execute(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Corte", "Aluguel", "Corte"}
	for i, entry := range output.Entries {
		if entry.Description != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], entry.Description)
		}
	}
	if output.Entries[0].Detail != "Cliente: Recente | Barbeiro: Carlos" {
		t.Errorf("expected most recent entry first, got %q", output.Entries[0].Detail)
	}
}

func TestProjectLedger_ContentFiltersRestrictInflowsOnly(t *testing.T) {
	f := newLedgerFixture()
	day := time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local)

	f.addAppointment(t, "João", "Carlos", "Corte", entity.PaymentPix, "30", day, true)
	f.addAppointment(t, "Pedro", "Rafael", "Barba", entity.PaymentCash, "20", day.Add(time.Hour), true)
	f.addExpense(t, "Lâminas", "15", day)

	output, err := f.project.Execute(context.Background(), Filter{Barber: "Carlos"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The inflow from Rafael is filtered out; the expense always passes.
	if len(output.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(output.Entries))
	}
	if !output.Total.Equal(decimal.RequireFromString("15")) {
		t.Errorf("expected total 15.00 (30 in, 15 out), got %s", output.Total)
	}
}

func TestProjectLedger_FiltersCombineByAnd(t *testing.T) {
	f := newLedgerFixture()
	day := time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local)

	f.addAppointment(t, "João", "Carlos", "Corte", entity.PaymentPix, "30", day, true)
	f.addAppointment(t, "Pedro", "Carlos", "Corte", entity.PaymentCash, "30", day.Add(time.Hour), true)

	output, err := f.project.Execute(context.Background(), Filter{
		Barber:  "Carlos",
		Payment: entity.PaymentPix,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Entries) != 1 {
		t.Fatalf("expected 1 entry under combined filters, got %d", len(output.Entries))
	}
	if output.Entries[0].Detail != "Cliente: João | Barbeiro: Carlos" {
		t.Errorf("wrong entry survived: %q", output.Entries[0].Detail)
	}
}

func TestProjectLedger_AllSentinelDisablesFilter(t *testing.T) {
	f := newLedgerFixture()
	day := time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local)

	f.addAppointment(t, "João", "Carlos", "Corte", entity.PaymentPix, "30", day, true)
	f.addAppointment(t, "Pedro", "Rafael", "Barba", entity.PaymentCash, "20", day.Add(time.Hour), true)

	output, err := f.project.Execute(context.Background(), Filter{
		Service: AllFilter,
		Barber:  AllFilter,
		Payment: AllFilter,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Entries) != 2 {
		t.Errorf("expected 2 entries with sentinel filters, got %d", len(output.Entries))
	}
}

func TestProjectLedger_DateRangeNeedsBothBounds(t *testing.T) {
	f := newLedgerFixture()

	f.addAppointment(t, "João", "Carlos", "Corte", entity.PaymentPix, "30",
		time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local), true)
	f.addAppointment(t, "Pedro", "Carlos", "Corte", entity.PaymentPix, "30",
		time.Date(2025, 3, 20, 10, 0, 0, 0, time.Local), true)

	// Only one bound set: the range axis stays inactive.
	output, err := f.project.Execute(context.Background(), Filter{
		Start: time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Entries) != 2 {
		t.Fatalf("expected 2 entries with inactive range, got %d", len(output.Entries))
	}

	output, err = f.project.Execute(context.Background(), Filter{
		Start: time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		End:   time.Date(2025, 3, 25, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Entries) != 1 {
		t.Fatalf("expected 1 entry inside active range, got %d", len(output.Entries))
	}
}

func TestProjectLedger_ActiveRangeExcludesInvalidInstants(t *testing.T) {
	f := newLedgerFixture()

	// Zero schedule is the invalid-instant sentinel.
	f.addAppointment(t, "João", "Carlos", "Corte", entity.PaymentPix, "30", time.Time{}, true)
	f.addAppointment(t, "Pedro", "Carlos", "Corte", entity.PaymentPix, "30",
		time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local), true)

	// Inactive range keeps the sentinel entry.
	output, err := f.project.Execute(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Entries) != 2 {
		t.Fatalf("expected 2 entries without range, got %d", len(output.Entries))
	}

	output, err = f.project.Execute(context.Background(), Filter{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Entries) != 1 {
		t.Fatalf("expected the sentinel entry excluded, got %d entries", len(output.Entries))
	}
	if output.Entries[0].Detail != "Cliente: Pedro | Barbeiro: Carlos" {
		t.Errorf("wrong entry survived: %q", output.Entries[0].Detail)
	}
}

func TestListFilterOptions(t *testing.T) {
	appointments := memory.NewAppointmentStore()
	f := &ledgerFixture{appointments: appointments, expenses: memory.NewExpenseStore()}
	day := time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local)

	f.addAppointment(t, "João", "Carlos", "Corte", entity.PaymentPix, "30", day, true)
	f.addAppointment(t, "Pedro", "Rafael", "Barba", entity.PaymentCash, "20", day, true)
	f.addAppointment(t, "Ana", "Carlos", "Corte", entity.PaymentPix, "30", day, true)
	// Pending appointments contribute no options.
	f.addAppointment(t, "Luis", "Miguel", "Luzes", entity.PaymentDebitCard, "80", day, false)

	uc := NewListFilterOptionsUseCase(appointments)
	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOptions := func(name string, got, want []string) {
		if len(got) != len(want) {
			t.Fatalf("%s: expected %v, got %v", name, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: expected %v, got %v", name, want, got)
				return
			}
		}
	}

	assertOptions("services", output.Services, []string{AllFilter, "Corte", "Barba"})
	assertOptions("barbers", output.Barbers, []string{AllFilter, "Carlos", "Rafael"})
	assertOptions("payments", output.Payments, []string{AllFilter, entity.PaymentPix, entity.PaymentCash})
}

func TestProjectLedger_SingleDayRange(t *testing.T) {
	f := newLedgerFixture()
	day := time.Date(2025, 3, 1, 14, 0, 0, 0, time.Local)

	f.addAppointment(t, "João", "Carlos", "Corte", entity.PaymentPix, "50", day, true)
	f.addExpense(t, "Produtos de barbearia", "15", time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local))
	// Outside the queried day on both sides.
	f.addAppointment(t, "Pedro", "Carlos", "Corte", entity.PaymentPix, "30", day.AddDate(0, 0, -1), true)
	f.addExpense(t, "Aluguel", "900", time.Date(2025, 3, 2, 0, 0, 0, 0, time.Local))

	output, err := f.project.Execute(context.Background(), Filter{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
		End:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(output.Entries))
	}
	if !output.Total.Equal(decimal.RequireFromString("35")) {
		t.Errorf("expected total 35, got %s", output.Total)
	}
	if output.TotalText != "R$ 35,00" {
		t.Errorf("unexpected total text: %q", output.TotalText)
	}
}
