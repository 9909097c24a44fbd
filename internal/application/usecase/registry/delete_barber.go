package registry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/adapter"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// DeleteBarberInput represents the input for barber deletion.
type DeleteBarberInput struct {
	ID uuid.UUID
}

// DeleteBarberUseCase handles barber deletion logic. Deleting a barber does
// not touch existing appointments; they keep the barber name they were
// booked with.
type DeleteBarberUseCase struct {
	barberRepo adapter.BarberRepository
}

// NewDeleteBarberUseCase creates a new DeleteBarberUseCase instance.
func NewDeleteBarberUseCase(barberRepo adapter.BarberRepository) *DeleteBarberUseCase {
	return &DeleteBarberUseCase{
		barberRepo: barberRepo,
	}
}

// Execute performs the barber deletion.
func (uc *DeleteBarberUseCase) Execute(ctx context.Context, input DeleteBarberInput) error {
	if _, err := uc.barberRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewRegistryError(
			domainerror.ErrCodeBarberNotFound,
			"barber not found",
			domainerror.ErrBarberNotFound,
		)
	}

	if err := uc.barberRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete barber: %w", err)
	}
	return nil
}
