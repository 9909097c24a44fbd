// Package registry contains the barber and client registry use cases.
package registry

import (
	"context"
	"fmt"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// CreateBarberInput represents the input for barber registration.
type CreateBarberInput struct {
	Name  string
	Phone string
}

// CreateBarberOutput represents the output of barber registration.
type CreateBarberOutput struct {
	Barber *entity.Barber
}

// CreateBarberUseCase handles barber registration logic.
type CreateBarberUseCase struct {
	barberRepo adapter.BarberRepository
}

// NewCreateBarberUseCase creates a new CreateBarberUseCase instance.
func NewCreateBarberUseCase(barberRepo adapter.BarberRepository) *CreateBarberUseCase {
	return &CreateBarberUseCase{
		barberRepo: barberRepo,
	}
}

// Execute performs the barber registration, assigning the next sequential
// two-digit display code.
func (uc *CreateBarberUseCase) Execute(ctx context.Context, input CreateBarberInput) (*CreateBarberOutput, error) {
	if input.Name == "" || input.Phone == "" {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeRegistryMissingFields,
			"name and phone are required",
			domainerror.ErrRegistryMissingFields,
		)
	}

	maxCode, err := uc.barberRepo.MaxCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry codes: %w", err)
	}

	barber := entity.NewBarber(fmt.Sprintf("%02d", maxCode+1), input.Name, input.Phone)
	if err := uc.barberRepo.Create(ctx, barber); err != nil {
		return nil, fmt.Errorf("failed to create barber: %w", err)
	}

	return &CreateBarberOutput{Barber: barber}, nil
}
