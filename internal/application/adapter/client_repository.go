// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/domain/entity"
)

// ClientRepository is the session-scoped store for the client registry.
type ClientRepository interface {
	// Create adds a client to the registry.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// Update replaces a stored client.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all clients in insertion order.
	List(ctx context.Context) ([]*entity.Client, error)

	// MaxCode returns the highest numeric display code, 0 when empty.
	MaxCode(ctx context.Context) (int, error)
}
