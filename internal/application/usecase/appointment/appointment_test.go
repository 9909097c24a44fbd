// Package appointment contains appointment lifecycle and reporting use cases.
package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/integration/persistence/memory"
)

func seedCatalog(t *testing.T) adapter.ServiceRepository {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewServiceStore()

	services := []*entity.Service{
		entity.NewService("01", "Corte", decimal.RequireFromString("30"), 30),
		entity.NewService("02", "Barba", decimal.RequireFromString("20"), 20),
	}
	for _, s := range services {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("failed to seed catalog: %v", err)
		}
	}
	return repo
}

func TestBookAppointment_AggregatesSnapshots(t *testing.T) {
	ctx := context.Background()
	appointmentRepo := memory.NewAppointmentStore()
	uc := NewBookAppointmentUseCase(appointmentRepo, seedCatalog(t))

	output, err := uc.Execute(ctx, BookAppointmentInput{
		Client:              "João",
		Barber:              "Carlos",
		Schedule:            time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local),
		ServiceDescriptions: []string{"Corte", "Barba"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := output.Appointment
	if !a.Price.Equal(decimal.RequireFromString("50")) {
		t.Errorf("expected aggregate price 50, got %s", a.Price)
	}
	if a.PriceText != "R$ 50,00" {
		t.Errorf("expected price text R$ 50,00, got %q", a.PriceText)
	}
	if a.DurationText != "0h 50min" {
		t.Errorf("expected duration text 0h 50min, got %q", a.DurationText)
	}
	if a.Label != "15/03/2025 às 14:30 - João" {
		t.Errorf("unexpected label: %q", a.Label)
	}
	if a.ServiceSummary != "Corte, Barba com Carlos" {
		t.Errorf("unexpected service summary: %q", a.ServiceSummary)
	}
	if a.Status != entity.AppointmentStatusPending {
		t.Errorf("expected pending status, got %s", a.Status)
	}
	if a.Payment != entity.PaymentPending {
		t.Errorf("expected pending payment placeholder, got %q", a.Payment)
	}
}

func TestBookAppointment_SnapshotsSurviveCatalogEdits(t *testing.T) {
	ctx := context.Background()
	serviceRepo := seedCatalog(t)
	appointmentRepo := memory.NewAppointmentStore()
	uc := NewBookAppointmentUseCase(appointmentRepo, serviceRepo)

	output, err := uc.Execute(ctx, BookAppointmentInput{
		Client:              "João",
		Barber:              "Carlos",
		Schedule:            time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local),
		ServiceDescriptions: []string{"Corte"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	service, err := serviceRepo.FindByDescription(ctx, "Corte")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	service.Price = decimal.RequireFromString("99")
	if err := serviceRepo.Update(ctx, service); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := appointmentRepo.FindByID(ctx, output.Appointment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored.Price.Equal(decimal.RequireFromString("30")) {
		t.Errorf("catalog edit leaked into booked snapshot: %s", stored.Price)
	}
}

func TestBookAppointment_RejectsUnresolvedService(t *testing.T) {
	ctx := context.Background()
	appointmentRepo := memory.NewAppointmentStore()
	uc := NewBookAppointmentUseCase(appointmentRepo, seedCatalog(t))

	_, err := uc.Execute(ctx, BookAppointmentInput{
		Client:              "João",
		Barber:              "Carlos",
		Schedule:            time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local),
		ServiceDescriptions: []string{"Corte", "Luzes"},
	})

	var aptErr *domainerror.AppointmentError
	if !errors.As(err, &aptErr) || aptErr.Code != domainerror.ErrCodeUnresolvedService {
		t.Fatalf("expected unresolved-service error, got %v", err)
	}

	// No partial booking may survive a rejected composition.
	stored, listErr := appointmentRepo.List(ctx)
	if listErr != nil {
		t.Fatalf("unexpected error: %v", listErr)
	}
	if len(stored) != 0 {
		t.Errorf("expected empty store after rejection, got %d appointments", len(stored))
	}
}

func TestCompleteAppointment_Idempotent(t *testing.T) {
	ctx := context.Background()
	appointmentRepo := memory.NewAppointmentStore()
	book := NewBookAppointmentUseCase(appointmentRepo, seedCatalog(t))
	complete := NewCompleteAppointmentUseCase(appointmentRepo)

	booked, err := book.Execute(ctx, BookAppointmentInput{
		Client:              "João",
		Barber:              "Carlos",
		Schedule:            time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local),
		ServiceDescriptions: []string{"Corte"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 2; i++ {
		output, err := complete.Execute(ctx, CompleteAppointmentInput{ID: booked.Appointment.ID})
		if err != nil {
			t.Fatalf("completion %d failed: %v", i+1, err)
		}
		if output.Appointment.Status != entity.AppointmentStatusCompleted {
			t.Errorf("completion %d: expected completed status, got %s", i+1, output.Appointment.Status)
		}
	}
}

func TestListAppointments_SplitsAndAggregates(t *testing.T) {
	ctx := context.Background()
	appointmentRepo := memory.NewAppointmentStore()
	book := NewBookAppointmentUseCase(appointmentRepo, seedCatalog(t))
	complete := NewCompleteAppointmentUseCase(appointmentRepo)
	list := NewListAppointmentsUseCase(appointmentRepo)

	schedule := time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local)
	first, err := book.Execute(ctx, BookAppointmentInput{
		Client: "João", Barber: "Carlos", Schedule: schedule,
		ServiceDescriptions: []string{"Corte", "Barba"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := book.Execute(ctx, BookAppointmentInput{
		Client: "Pedro", Barber: "Carlos", Schedule: schedule.Add(time.Hour),
		ServiceDescriptions: []string{"Corte"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := complete.Execute(ctx, CompleteAppointmentInput{ID: first.Appointment.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := list.Execute(ctx, ListAppointmentsInput{Kind: PeriodAll})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.PendingCount != 1 || output.CompletedCount != 1 {
		t.Fatalf("expected 1 pending / 1 completed, got %d / %d", output.PendingCount, output.CompletedCount)
	}
	// Revenue counts completed appointments only.
	if !output.Revenue.Equal(decimal.RequireFromString("50")) {
		t.Errorf("expected revenue 50, got %s", output.Revenue)
	}
	if output.RevenueText != "R$ 50,00" {
		t.Errorf("expected revenue text R$ 50,00, got %q", output.RevenueText)
	}
}

func TestListAppointments_PendingSortStableOnEqualInstants(t *testing.T) {
	ctx := context.Background()
	appointmentRepo := memory.NewAppointmentStore()
	book := NewBookAppointmentUseCase(appointmentRepo, seedCatalog(t))
	list := NewListAppointmentsUseCase(appointmentRepo)

	schedule := time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local)
	for _, client := range []string{"Primeiro", "Segundo", "Terceiro"} {
		if _, err := book.Execute(ctx, BookAppointmentInput{
			Client: client, Barber: "Carlos", Schedule: schedule,
			ServiceDescriptions: []string{"Corte"},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	output, err := list.Execute(ctx, ListAppointmentsInput{Kind: PeriodAll})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Primeiro", "Segundo", "Terceiro"}
	for i, a := range output.Pending {
		if a.Client != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], a.Client)
		}
	}
}

func TestListAppointments_DailyMatchesExactLabel(t *testing.T) {
	ctx := context.Background()
	appointmentRepo := memory.NewAppointmentStore()
	book := NewBookAppointmentUseCase(appointmentRepo, seedCatalog(t))
	list := NewListAppointmentsUseCase(appointmentRepo)

	if _, err := book.Execute(ctx, BookAppointmentInput{
		Client: "João", Barber: "Carlos",
		Schedule:            time.Date(2025, 3, 15, 9, 0, 0, 0, time.Local),
		ServiceDescriptions: []string{"Corte"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := book.Execute(ctx, BookAppointmentInput{
		Client: "Pedro", Barber: "Carlos",
		Schedule:            time.Date(2025, 3, 16, 9, 0, 0, 0, time.Local),
		ServiceDescriptions: []string{"Corte"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := list.Execute(ctx, ListAppointmentsInput{Kind: PeriodDaily, Today: "15/03/2025"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.PendingCount != 1 {
		t.Fatalf("expected 1 appointment on 15/03/2025, got %d", output.PendingCount)
	}
	if output.Pending[0].Client != "João" {
		t.Errorf("expected João, got %s", output.Pending[0].Client)
	}

	// The daily filter is an exact string match; a differently formatted
	// today string matches nothing.
	output, err = list.Execute(ctx, ListAppointmentsInput{Kind: PeriodDaily, Today: "2025-03-15"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.PendingCount != 0 {
		t.Errorf("expected no matches for non-canonical today string, got %d", output.PendingCount)
	}
}

func TestListAppointments_WeeklyBounds(t *testing.T) {
	ctx := context.Background()
	appointmentRepo := memory.NewAppointmentStore()
	book := NewBookAppointmentUseCase(appointmentRepo, seedCatalog(t))
	list := NewListAppointmentsUseCase(appointmentRepo)

	// 2025-03-12 is a Wednesday; its week runs Sunday 09 through Saturday 15.
	reference := time.Date(2025, 3, 12, 12, 0, 0, 0, time.Local)
	inWeek := []time.Time{
		time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local),
		time.Date(2025, 3, 15, 23, 59, 0, 0, time.Local),
	}
	outOfWeek := []time.Time{
		time.Date(2025, 3, 8, 23, 59, 0, 0, time.Local),
		time.Date(2025, 3, 16, 0, 0, 0, 0, time.Local),
	}

	for i, schedule := range append(inWeek, outOfWeek...) {
		if _, err := book.Execute(ctx, BookAppointmentInput{
			Client: "Cliente", Barber: "Carlos", Schedule: schedule,
			ServiceDescriptions: []string{"Corte"},
		}); err != nil {
			t.Fatalf("booking %d failed: %v", i, err)
		}
	}

	output, err := list.Execute(ctx, ListAppointmentsInput{Kind: PeriodWeekly, Reference: reference})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.PendingCount != len(inWeek) {
		t.Errorf("expected %d appointments in week, got %d", len(inWeek), output.PendingCount)
	}
}

func TestListAppointments_RangeRequiresBothBounds(t *testing.T) {
	ctx := context.Background()
	list := NewListAppointmentsUseCase(memory.NewAppointmentStore())

	_, err := list.Execute(ctx, ListAppointmentsInput{
		Kind:  PeriodRange,
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
	})

	var aptErr *domainerror.AppointmentError
	if !errors.As(err, &aptErr) || aptErr.Code != domainerror.ErrCodeMissingPeriodBounds {
		t.Fatalf("expected missing-period-bounds error, got %v", err)
	}
}

func TestListAppointments_EmptyDaily(t *testing.T) {
	ctx := context.Background()
	list := NewListAppointmentsUseCase(memory.NewAppointmentStore())

	output, err := list.Execute(ctx, ListAppointmentsInput{Kind: PeriodDaily, Today: "15/03/2025"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.PendingCount != 0 || output.CompletedCount != 0 {
		t.Errorf("expected empty result, got %d / %d", output.PendingCount, output.CompletedCount)
	}
	if !output.Revenue.IsZero() {
		t.Errorf("expected zero revenue, got %s", output.Revenue)
	}
}

func TestListAppointments_WeeklyAndRangeExcludeInvalidSchedules(t *testing.T) {
	ctx := context.Background()
	appointmentRepo := memory.NewAppointmentStore()
	list := NewListAppointmentsUseCase(appointmentRepo)

	snapshot := entity.ServiceSnapshot{
		Description:     "Corte",
		Price:           decimal.RequireFromString("30"),
		DurationMinutes: 30,
	}
	valid := entity.NewAppointment(
		time.Date(2025, 3, 12, 14, 0, 0, 0, time.Local),
		"Cliente Válido", "Carlos", entity.PaymentPix,
		[]entity.ServiceSnapshot{snapshot},
	)
	// A free-text label parses to the zero-instant sentinel; bookings reject
	// it, so it can only enter through the store.
	sentinel := entity.NewAppointment(
		time.Time{},
		"Cliente Sentinela", "Carlos", entity.PaymentPix,
		[]entity.ServiceSnapshot{snapshot},
	)
	for _, a := range []*entity.Appointment{valid, sentinel} {
		if err := appointmentRepo.Create(ctx, a); err != nil {
			t.Fatalf("failed to seed appointment: %v", err)
		}
	}

	inputs := map[string]ListAppointmentsInput{
		"weekly": {Kind: PeriodWeekly, Reference: time.Date(2025, 3, 12, 12, 0, 0, 0, time.Local)},
		"range": {
			Kind:  PeriodRange,
			Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
			End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.Local),
		},
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			output, err := list.Execute(ctx, input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.PendingCount != 1 {
				t.Fatalf("expected 1 appointment, got %d", output.PendingCount)
			}
			if output.Pending[0].Client != "Cliente Válido" {
				t.Errorf("wrong appointment survived: %q", output.Pending[0].Client)
			}
		})
	}
}
