// Package catalog contains service catalog use cases.
package catalog

import (
	"context"
	"fmt"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/domain/valueobject"
)

// CreateServiceInput represents the input for service creation. Price and
// duration arrive as free text ("R$ 30,00", "0h 30min") and are normalized
// through the lenient money/duration parsers.
type CreateServiceInput struct {
	Description  string
	PriceText    string
	DurationText string
}

// CreateServiceOutput represents the output of service creation.
type CreateServiceOutput struct {
	Service *ServiceOutput
}

// CreateServiceUseCase handles service creation logic.
type CreateServiceUseCase struct {
	serviceRepo adapter.ServiceRepository
}

// NewCreateServiceUseCase creates a new CreateServiceUseCase instance.
func NewCreateServiceUseCase(serviceRepo adapter.ServiceRepository) *CreateServiceUseCase {
	return &CreateServiceUseCase{
		serviceRepo: serviceRepo,
	}
}

// Execute performs the service creation. The new service receives the next
// sequential two-digit display code: max existing numeric code + 1, "01" for
// an empty catalog. Codes freed by deletion are not reused.
func (uc *CreateServiceUseCase) Execute(ctx context.Context, input CreateServiceInput) (*CreateServiceOutput, error) {
	if input.Description == "" || input.PriceText == "" || input.DurationText == "" {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeServiceMissingFields,
			"description, price and duration are required",
			domainerror.ErrServiceMissingFields,
		)
	}

	maxCode, err := uc.serviceRepo.MaxCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog codes: %w", err)
	}
	code := fmt.Sprintf("%02d", maxCode+1)

	service := entity.NewService(
		code,
		input.Description,
		valueobject.ParseAmount(input.PriceText),
		valueobject.ParseDurationText(input.DurationText),
	)

	if err := uc.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	return &CreateServiceOutput{Service: toServiceOutput(service)}, nil
}
