// Package appointment contains appointment lifecycle and reporting use cases.
package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/adapter"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// DeleteAppointmentInput represents the input for appointment deletion.
// Removal is deletion, not a lifecycle state; there is no cancelled status.
type DeleteAppointmentInput struct {
	ID uuid.UUID
}

// DeleteAppointmentUseCase handles appointment deletion logic.
type DeleteAppointmentUseCase struct {
	appointmentRepo adapter.AppointmentRepository
}

// NewDeleteAppointmentUseCase creates a new DeleteAppointmentUseCase instance.
func NewDeleteAppointmentUseCase(appointmentRepo adapter.AppointmentRepository) *DeleteAppointmentUseCase {
	return &DeleteAppointmentUseCase{
		appointmentRepo: appointmentRepo,
	}
}

// Execute performs the appointment deletion.
func (uc *DeleteAppointmentUseCase) Execute(ctx context.Context, input DeleteAppointmentInput) error {
	if _, err := uc.appointmentRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewAppointmentError(
			domainerror.ErrCodeAppointmentNotFound,
			"appointment not found",
			domainerror.ErrAppointmentNotFound,
		)
	}

	if err := uc.appointmentRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}
