package registry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/adapter"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// DeleteClientInput represents the input for client deletion.
type DeleteClientInput struct {
	ID uuid.UUID
}

// DeleteClientUseCase handles client deletion logic. Existing appointments
// keep the client name they were booked with.
type DeleteClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewDeleteClientUseCase creates a new DeleteClientUseCase instance.
func NewDeleteClientUseCase(clientRepo adapter.ClientRepository) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client deletion.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, input DeleteClientInput) error {
	if _, err := uc.clientRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewRegistryError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}

	if err := uc.clientRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
