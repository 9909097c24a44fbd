package registry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// UpdateBarberInput represents the input for barber update. The display code
// is immutable.
type UpdateBarberInput struct {
	ID    uuid.UUID
	Name  string
	Phone string
}

// UpdateBarberOutput represents the output of barber update.
type UpdateBarberOutput struct {
	Barber *entity.Barber
}

// UpdateBarberUseCase handles barber update logic.
type UpdateBarberUseCase struct {
	barberRepo adapter.BarberRepository
}

// NewUpdateBarberUseCase creates a new UpdateBarberUseCase instance.
func NewUpdateBarberUseCase(barberRepo adapter.BarberRepository) *UpdateBarberUseCase {
	return &UpdateBarberUseCase{
		barberRepo: barberRepo,
	}
}

// Execute performs the barber update.
func (uc *UpdateBarberUseCase) Execute(ctx context.Context, input UpdateBarberInput) (*UpdateBarberOutput, error) {
	if input.Name == "" || input.Phone == "" {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeRegistryMissingFields,
			"name and phone are required",
			domainerror.ErrRegistryMissingFields,
		)
	}

	barber, err := uc.barberRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeBarberNotFound,
			"barber not found",
			domainerror.ErrBarberNotFound,
		)
	}

	barber.Name = input.Name
	barber.Phone = input.Phone
	if err := uc.barberRepo.Update(ctx, barber); err != nil {
		return nil, fmt.Errorf("failed to update barber: %w", err)
	}

	return &UpdateBarberOutput{Barber: barber}, nil
}
