package registry

import (
	"context"
	"fmt"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
)

// ListBarbersOutput represents the barber registry in insertion order.
type ListBarbersOutput struct {
	Barbers []*entity.Barber
}

// ListBarbersUseCase handles barber listing logic.
type ListBarbersUseCase struct {
	barberRepo adapter.BarberRepository
}

// NewListBarbersUseCase creates a new ListBarbersUseCase instance.
func NewListBarbersUseCase(barberRepo adapter.BarberRepository) *ListBarbersUseCase {
	return &ListBarbersUseCase{
		barberRepo: barberRepo,
	}
}

// Execute returns all registered barbers.
func (uc *ListBarbersUseCase) Execute(ctx context.Context) (*ListBarbersOutput, error) {
	barbers, err := uc.barberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list barbers: %w", err)
	}
	return &ListBarbersOutput{Barbers: barbers}, nil
}
