// Package appointment contains appointment lifecycle and reporting use cases.
package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// UpdateAppointmentInput represents the input for appointment update: a full
// replace of the mutable fields. Status, when empty, keeps its current value.
type UpdateAppointmentInput struct {
	ID                  uuid.UUID
	Client              string
	Barber              string
	Schedule            time.Time
	Payment             string
	ServiceDescriptions []string
	Status              entity.AppointmentStatus
}

// UpdateAppointmentOutput represents the output of appointment update.
type UpdateAppointmentOutput struct {
	Appointment *AppointmentOutput
}

// UpdateAppointmentUseCase handles appointment update logic.
type UpdateAppointmentUseCase struct {
	appointmentRepo adapter.AppointmentRepository
	serviceRepo     adapter.ServiceRepository
}

// NewUpdateAppointmentUseCase creates a new UpdateAppointmentUseCase instance.
func NewUpdateAppointmentUseCase(
	appointmentRepo adapter.AppointmentRepository,
	serviceRepo adapter.ServiceRepository,
) *UpdateAppointmentUseCase {
	return &UpdateAppointmentUseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
	}
}

// Execute performs the appointment update. Identity and insertion order are
// preserved; composition rules are the same as for booking, so an update that
// fails validation leaves the stored appointment untouched.
func (uc *UpdateAppointmentUseCase) Execute(ctx context.Context, input UpdateAppointmentInput) (*UpdateAppointmentOutput, error) {
	appointment, err := uc.appointmentRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewAppointmentError(
			domainerror.ErrCodeAppointmentNotFound,
			"appointment not found",
			domainerror.ErrAppointmentNotFound,
		)
	}

	if input.Client == "" || input.Barber == "" || input.Schedule.IsZero() {
		return nil, domainerror.NewAppointmentError(
			domainerror.ErrCodeAppointmentMissingFields,
			"client, barber and schedule are required",
			domainerror.ErrAppointmentMissingFields,
		)
	}

	booker := &BookAppointmentUseCase{appointmentRepo: uc.appointmentRepo, serviceRepo: uc.serviceRepo}
	snapshots, err := booker.resolveServices(ctx, input.ServiceDescriptions)
	if err != nil {
		return nil, err
	}

	appointment.ReplaceFields(input.Schedule, input.Client, input.Barber, input.Payment, snapshots, input.Status)

	if err := uc.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	return &UpdateAppointmentOutput{Appointment: toAppointmentOutput(appointment)}, nil
}
