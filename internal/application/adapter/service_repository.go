// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/domain/entity"
)

// ServiceRepository is the session-scoped store for the service catalog.
// Catalog entries live only for the process lifetime.
type ServiceRepository interface {
	// Create adds a service to the catalog.
	Create(ctx context.Context, service *entity.Service) error

	// FindByID retrieves a service by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// FindByDescription retrieves the first service whose description matches.
	FindByDescription(ctx context.Context, description string) (*entity.Service, error)

	// Update replaces a stored service.
	Update(ctx context.Context, service *entity.Service) error

	// Delete removes a service from the catalog.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all services in insertion order.
	List(ctx context.Context) ([]*entity.Service, error)

	// MaxCode returns the highest numeric display code currently in the
	// catalog, 0 when empty. Codes are derived from the current max, so
	// deletions leave gaps that are never reused.
	MaxCode(ctx context.Context) (int, error)
}
