// Package appointment contains appointment lifecycle and reporting use cases.
package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/adapter"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// CompleteAppointmentInput represents the input for the pending→completed transition.
type CompleteAppointmentInput struct {
	ID uuid.UUID
}

// CompleteAppointmentOutput represents the output of completing an appointment.
type CompleteAppointmentOutput struct {
	Appointment *AppointmentOutput
}

// CompleteAppointmentUseCase handles the one-way lifecycle transition.
type CompleteAppointmentUseCase struct {
	appointmentRepo adapter.AppointmentRepository
}

// NewCompleteAppointmentUseCase creates a new CompleteAppointmentUseCase instance.
func NewCompleteAppointmentUseCase(appointmentRepo adapter.AppointmentRepository) *CompleteAppointmentUseCase {
	return &CompleteAppointmentUseCase{
		appointmentRepo: appointmentRepo,
	}
}

// Execute transitions a pending appointment to completed. Completing an
// already-completed appointment is idempotent: the second call changes
// nothing and succeeds.
func (uc *CompleteAppointmentUseCase) Execute(ctx context.Context, input CompleteAppointmentInput) (*CompleteAppointmentOutput, error) {
	appointment, err := uc.appointmentRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewAppointmentError(
			domainerror.ErrCodeAppointmentNotFound,
			"appointment not found",
			domainerror.ErrAppointmentNotFound,
		)
	}

	appointment.Complete()

	if err := uc.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	return &CompleteAppointmentOutput{Appointment: toAppointmentOutput(appointment)}, nil
}
