package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// clientStore implements the adapter.ClientRepository interface.
type clientStore struct {
	mu      sync.RWMutex
	clients []*entity.Client
}

// NewClientStore creates an empty in-memory client registry.
func NewClientStore() adapter.ClientRepository {
	return &clientStore{}
}

// Create adds a client to the registry.
func (s *clientStore) Create(ctx context.Context, client *entity.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, client)
	return nil
}

// FindByID retrieves a client by its ID.
func (s *clientStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrClientNotFound
}

// Update replaces a stored client.
func (s *clientStore) Update(ctx context.Context, client *entity.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.clients {
		if c.ID == client.ID {
			s.clients[i] = client
			return nil
		}
	}
	return domainerror.ErrClientNotFound
}

// Delete removes a client.
func (s *clientStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.clients {
		if c.ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrClientNotFound
}

// List returns all clients in insertion order.
func (s *clientStore) List(ctx context.Context) ([]*entity.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Client, len(s.clients))
	copy(out, s.clients)
	return out, nil
}

// MaxCode returns the highest numeric display code, 0 when empty.
func (s *clientStore) MaxCode(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	max := 0
	for _, c := range s.clients {
		if n, err := strconv.Atoi(c.Code); err == nil && n > max {
			max = n
		}
	}
	return max, nil
}
