// Package catalog contains service catalog use cases.
package catalog

import (
	"context"
	"fmt"

	"github.com/barber-manager/backend/internal/application/adapter"
)

// ListServicesOutput represents the output of listing catalog services.
type ListServicesOutput struct {
	Services []*ServiceOutput
}

// ListServicesUseCase handles catalog listing logic.
type ListServicesUseCase struct {
	serviceRepo adapter.ServiceRepository
}

// NewListServicesUseCase creates a new ListServicesUseCase instance.
func NewListServicesUseCase(serviceRepo adapter.ServiceRepository) *ListServicesUseCase {
	return &ListServicesUseCase{
		serviceRepo: serviceRepo,
	}
}

// Execute returns all catalog services in insertion order.
func (uc *ListServicesUseCase) Execute(ctx context.Context) (*ListServicesOutput, error) {
	services, err := uc.serviceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	output := &ListServicesOutput{Services: make([]*ServiceOutput, 0, len(services))}
	for _, s := range services {
		output.Services = append(output.Services, toServiceOutput(s))
	}
	return output, nil
}
