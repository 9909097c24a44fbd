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

// barberStore implements the adapter.BarberRepository interface.
type barberStore struct {
	mu      sync.RWMutex
	barbers []*entity.Barber
}

// NewBarberStore creates an empty in-memory barber registry.
func NewBarberStore() adapter.BarberRepository {
	return &barberStore{}
}

// Create adds a barber to the registry.
func (s *barberStore) Create(ctx context.Context, barber *entity.Barber) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.barbers = append(s.barbers, barber)
	return nil
}

// FindByID retrieves a barber by its ID.
func (s *barberStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.barbers {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domainerror.ErrBarberNotFound
}

// Update replaces a stored barber.
func (s *barberStore) Update(ctx context.Context, barber *entity.Barber) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.barbers {
		if b.ID == barber.ID {
			s.barbers[i] = barber
			return nil
		}
	}
	return domainerror.ErrBarberNotFound
}

// Delete removes a barber.
func (s *barberStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.barbers {
		if b.ID == id {
			s.barbers = append(s.barbers[:i], s.barbers[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrBarberNotFound
}

// List returns all barbers in insertion order.
func (s *barberStore) List(ctx context.Context) ([]*entity.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Barber, len(s.barbers))
	copy(out, s.barbers)
	return out, nil
}

// MaxCode returns the highest numeric display code, 0 when empty.
func (s *barberStore) MaxCode(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	max := 0
	for _, b := range s.barbers {
		if n, err := strconv.Atoi(b.Code); err == nil && n > max {
			max = n
		}
	}
	return max, nil
}
