// Package catalog contains service catalog use cases.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/adapter"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// DeleteServiceInput represents the input for service deletion.
type DeleteServiceInput struct {
	ID uuid.UUID
}

// DeleteServiceUseCase handles service deletion logic.
type DeleteServiceUseCase struct {
	serviceRepo adapter.ServiceRepository
}

// NewDeleteServiceUseCase creates a new DeleteServiceUseCase instance.
func NewDeleteServiceUseCase(serviceRepo adapter.ServiceRepository) *DeleteServiceUseCase {
	return &DeleteServiceUseCase{
		serviceRepo: serviceRepo,
	}
}

// Execute performs the service deletion. The freed display code is not
// reassigned; existing bookings keep their snapshots.
func (uc *DeleteServiceUseCase) Execute(ctx context.Context, input DeleteServiceInput) error {
	if _, err := uc.serviceRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewCatalogError(
			domainerror.ErrCodeServiceNotFound,
			"service not found",
			domainerror.ErrServiceNotFound,
		)
	}

	if err := uc.serviceRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}
