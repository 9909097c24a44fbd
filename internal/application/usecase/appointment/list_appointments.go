// Package appointment contains appointment lifecycle and reporting use cases.
package appointment

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/domain/valueobject"
)

// ListAppointmentsInput represents the reporting query over the appointment
// collection. Today is the caller-supplied "DD/MM/YYYY" string the daily
// filter compares against; Reference anchors the weekly filter (zero value
// means the current wall clock); Start/End bound the range filter.
type ListAppointmentsInput struct {
	Kind      PeriodKind
	Today     string
	Reference time.Time
	Start     time.Time
	End       time.Time
}

// ListAppointmentsOutput carries the filtered, sorted views plus the
// per-filter aggregates every screen shares.
type ListAppointmentsOutput struct {
	Pending        []*AppointmentOutput
	Completed      []*AppointmentOutput
	PendingCount   int
	CompletedCount int
	Revenue        decimal.Decimal
	RevenueText    string
}

// ListAppointmentsUseCase handles appointment filtering, ordering and aggregates.
type ListAppointmentsUseCase struct {
	appointmentRepo adapter.AppointmentRepository
}

// NewListAppointmentsUseCase creates a new ListAppointmentsUseCase instance.
func NewListAppointmentsUseCase(appointmentRepo adapter.AppointmentRepository) *ListAppointmentsUseCase {
	return &ListAppointmentsUseCase{
		appointmentRepo: appointmentRepo,
	}
}

// Execute applies the period filter, splits the result by status, sorts the
// pending set ascending by schedule (insertion order breaks ties, so the
// "what's next" queue is stable) and computes the aggregates over the
// filtered sets. Revenue sums only completed appointments.
func (uc *ListAppointmentsUseCase) Execute(ctx context.Context, input ListAppointmentsInput) (*ListAppointmentsOutput, error) {
	appointments, err := uc.appointmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	filtered, err := filterByPeriod(appointments, input)
	if err != nil {
		return nil, err
	}

	var pending, completed []*entity.Appointment
	for _, a := range filtered {
		if a.Status == entity.AppointmentStatusCompleted {
			completed = append(completed, a)
		} else {
			pending = append(pending, a)
		}
	}

	// The repository lists in insertion order, so a stable sort on the
	// schedule alone keeps equal instants in insertion order.
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Schedule.Before(pending[j].Schedule)
	})

	revenue := decimal.Zero
	for _, a := range completed {
		revenue = revenue.Add(a.Price)
	}

	output := &ListAppointmentsOutput{
		Pending:        make([]*AppointmentOutput, 0, len(pending)),
		Completed:      make([]*AppointmentOutput, 0, len(completed)),
		PendingCount:   len(pending),
		CompletedCount: len(completed),
		Revenue:        revenue,
		RevenueText:    valueobject.FormatBRL(revenue),
	}
	for _, a := range pending {
		output.Pending = append(output.Pending, toAppointmentOutput(a))
	}
	for _, a := range completed {
		output.Completed = append(output.Completed, toAppointmentOutput(a))
	}
	return output, nil
}

// filterByPeriod restricts the collection to the requested period.
// Appointments carrying the invalid-instant sentinel are excluded from the
// weekly and range filters; the daily filter keeps its exact-string-match
// rule, which excludes them by never matching a real date label.
func filterByPeriod(appointments []*entity.Appointment, input ListAppointmentsInput) ([]*entity.Appointment, error) {
	switch input.Kind {
	case PeriodAll:
		return appointments, nil

	case PeriodDaily:
		var out []*entity.Appointment
		for _, a := range appointments {
			if valueobject.FormatDayLabel(a.Schedule) == input.Today {
				out = append(out, a)
			}
		}
		return out, nil

	case PeriodWeekly:
		reference := input.Reference
		if reference.IsZero() {
			reference = time.Now()
		}
		start, end := WeekBounds(reference)
		return filterByInstantRange(appointments, start, end), nil

	case PeriodRange:
		if input.Start.IsZero() || input.End.IsZero() {
			return nil, domainerror.NewAppointmentError(
				domainerror.ErrCodeMissingPeriodBounds,
				"range filter requires start and end days",
				domainerror.ErrMissingPeriodBounds,
			)
		}
		start, end := DayBounds(input.Start, input.End)
		return filterByInstantRange(appointments, start, end), nil

	default:
		return nil, domainerror.NewAppointmentError(
			domainerror.ErrCodeUnknownPeriodKind,
			fmt.Sprintf("unknown period filter kind %q", input.Kind),
			domainerror.ErrUnknownPeriodKind,
		)
	}
}

func filterByInstantRange(appointments []*entity.Appointment, start, end time.Time) []*entity.Appointment {
	var out []*entity.Appointment
	for _, a := range appointments {
		if !a.HasValidSchedule() {
			continue
		}
		if a.Schedule.Before(start) || a.Schedule.After(end) {
			continue
		}
		out = append(out, a)
	}
	return out
}
