// Package catalog contains service catalog use cases.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/adapter"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/domain/valueobject"
)

// UpdateServiceInput represents the input for service update. The display
// code is immutable; everything else is replaced.
type UpdateServiceInput struct {
	ID           uuid.UUID
	Description  string
	PriceText    string
	DurationText string
}

// UpdateServiceOutput represents the output of service update.
type UpdateServiceOutput struct {
	Service *ServiceOutput
}

// UpdateServiceUseCase handles service update logic.
type UpdateServiceUseCase struct {
	serviceRepo adapter.ServiceRepository
}

// NewUpdateServiceUseCase creates a new UpdateServiceUseCase instance.
func NewUpdateServiceUseCase(serviceRepo adapter.ServiceRepository) *UpdateServiceUseCase {
	return &UpdateServiceUseCase{
		serviceRepo: serviceRepo,
	}
}

// Execute performs the service update. Appointments booked before the update
// keep their snapshots; only future bookings see the new price and duration.
func (uc *UpdateServiceUseCase) Execute(ctx context.Context, input UpdateServiceInput) (*UpdateServiceOutput, error) {
	if input.Description == "" || input.PriceText == "" || input.DurationText == "" {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeServiceMissingFields,
			"description, price and duration are required",
			domainerror.ErrServiceMissingFields,
		)
	}

	service, err := uc.serviceRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeServiceNotFound,
			"service not found",
			domainerror.ErrServiceNotFound,
		)
	}

	service.Description = input.Description
	service.Price = valueobject.ParseAmount(input.PriceText)
	service.DurationMinutes = valueobject.ParseDurationText(input.DurationText)

	if err := uc.serviceRepo.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	return &UpdateServiceOutput{Service: toServiceOutput(service)}, nil
}
