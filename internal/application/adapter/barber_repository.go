// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/domain/entity"
)

// BarberRepository is the session-scoped store for the barber registry.
type BarberRepository interface {
	// Create adds a barber to the registry.
	Create(ctx context.Context, barber *entity.Barber) error

	// FindByID retrieves a barber by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Barber, error)

	// Update replaces a stored barber.
	Update(ctx context.Context, barber *entity.Barber) error

	// Delete removes a barber.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all barbers in insertion order.
	List(ctx context.Context) ([]*entity.Barber, error)

	// MaxCode returns the highest numeric display code, 0 when empty.
	MaxCode(ctx context.Context) (int, error)
}
