package registry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// UpdateClientInput represents the input for client update. The display code
// is immutable.
type UpdateClientInput struct {
	ID    uuid.UUID
	Name  string
	Phone string
}

// UpdateClientOutput represents the output of client update.
type UpdateClientOutput struct {
	Client *entity.Client
}

// UpdateClientUseCase handles client update logic.
type UpdateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewUpdateClientUseCase creates a new UpdateClientUseCase instance.
func NewUpdateClientUseCase(clientRepo adapter.ClientRepository) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client update.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*UpdateClientOutput, error) {
	if input.Name == "" || input.Phone == "" {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeRegistryMissingFields,
			"name and phone are required",
			domainerror.ErrRegistryMissingFields,
		)
	}

	client, err := uc.clientRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}

	client.Name = input.Name
	client.Phone = input.Phone
	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return &UpdateClientOutput{Client: client}, nil
}
