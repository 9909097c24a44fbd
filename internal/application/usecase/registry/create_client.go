package registry

import (
	"context"
	"fmt"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// CreateClientInput represents the input for client registration.
type CreateClientInput struct {
	Name  string
	Phone string
}

// CreateClientOutput represents the output of client registration.
type CreateClientOutput struct {
	Client *entity.Client
}

// CreateClientUseCase handles client registration logic.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client registration, assigning the next sequential
// two-digit display code.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	if input.Name == "" || input.Phone == "" {
		return nil, domainerror.NewRegistryError(
			domainerror.ErrCodeRegistryMissingFields,
			"name and phone are required",
			domainerror.ErrRegistryMissingFields,
		)
	}

	maxCode, err := uc.clientRepo.MaxCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry codes: %w", err)
	}

	client := entity.NewClient(fmt.Sprintf("%02d", maxCode+1), input.Name, input.Phone)
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &CreateClientOutput{Client: client}, nil
}
