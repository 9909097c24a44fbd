// Package appointment contains appointment lifecycle and reporting use cases.
package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// BookAppointmentInput represents the input for booking composition. Each
// service line names a catalog entry by description and must resolve against
// the catalog at booking time.
type BookAppointmentInput struct {
	Client              string
	Barber              string
	Schedule            time.Time
	Payment             string
	ServiceDescriptions []string
}

// BookAppointmentOutput represents the output of booking composition.
type BookAppointmentOutput struct {
	Appointment *AppointmentOutput
}

// BookAppointmentUseCase handles booking composition logic.
type BookAppointmentUseCase struct {
	appointmentRepo adapter.AppointmentRepository
	serviceRepo     adapter.ServiceRepository
}

// NewBookAppointmentUseCase creates a new BookAppointmentUseCase instance.
func NewBookAppointmentUseCase(
	appointmentRepo adapter.AppointmentRepository,
	serviceRepo adapter.ServiceRepository,
) *BookAppointmentUseCase {
	return &BookAppointmentUseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
	}
}

// Execute performs the booking composition: snapshots every resolved service
// line and aggregates price and duration. Composition is rejected outright
// when client, barber or schedule is missing, when no service line is given,
// or when any line fails to resolve; no partial booking is stored.
func (uc *BookAppointmentUseCase) Execute(ctx context.Context, input BookAppointmentInput) (*BookAppointmentOutput, error) {
	if input.Client == "" || input.Barber == "" || input.Schedule.IsZero() {
		return nil, domainerror.NewAppointmentError(
			domainerror.ErrCodeAppointmentMissingFields,
			"client, barber and schedule are required",
			domainerror.ErrAppointmentMissingFields,
		)
	}

	snapshots, err := uc.resolveServices(ctx, input.ServiceDescriptions)
	if err != nil {
		return nil, err
	}

	appointment := entity.NewAppointment(input.Schedule, input.Client, input.Barber, input.Payment, snapshots)

	if err := uc.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to store appointment: %w", err)
	}

	return &BookAppointmentOutput{Appointment: toAppointmentOutput(appointment)}, nil
}

// resolveServices resolves every service line against the catalog, in order,
// and returns the booked snapshots.
func (uc *BookAppointmentUseCase) resolveServices(ctx context.Context, descriptions []string) ([]entity.ServiceSnapshot, error) {
	if len(descriptions) == 0 {
		return nil, domainerror.NewAppointmentError(
			domainerror.ErrCodeAppointmentNoServices,
			"at least one service is required",
			domainerror.ErrAppointmentNoServices,
		)
	}

	snapshots := make([]entity.ServiceSnapshot, 0, len(descriptions))
	for _, description := range descriptions {
		if description == "" {
			return nil, domainerror.NewAppointmentError(
				domainerror.ErrCodeUnresolvedService,
				"empty service line",
				domainerror.ErrUnresolvedService,
			)
		}
		service, err := uc.serviceRepo.FindByDescription(ctx, description)
		if err != nil {
			return nil, domainerror.NewAppointmentError(
				domainerror.ErrCodeUnresolvedService,
				fmt.Sprintf("service %q does not match a catalog entry", description),
				domainerror.ErrUnresolvedService,
			)
		}
		snapshots = append(snapshots, service.Snapshot())
	}
	return snapshots, nil
}
