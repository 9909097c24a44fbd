// Package memory implements the session-scoped repositories as mutex-guarded
// in-memory stores. Appointments, services, expenses, barbers and clients
// live only for the process lifetime; every store keeps insertion order.
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

// serviceStore implements the adapter.ServiceRepository interface.
type serviceStore struct {
	mu       sync.RWMutex
	services []*entity.Service
}

// NewServiceStore creates an empty in-memory service catalog.
func NewServiceStore() adapter.ServiceRepository {
	return &serviceStore{}
}

// Create adds a service to the catalog.
func (s *serviceStore) Create(ctx context.Context, service *entity.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, service)
	return nil
}

// FindByID retrieves a service by its ID.
func (s *serviceStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return nil, domainerror.ErrServiceNotFound
}

// FindByDescription retrieves the first service whose description matches.
func (s *serviceStore) FindByDescription(ctx context.Context, description string) (*entity.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.Description == description {
			return svc, nil
		}
	}
	return nil, domainerror.ErrServiceNotFound
}

// Update replaces a stored service.
func (s *serviceStore) Update(ctx context.Context, service *entity.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, svc := range s.services {
		if svc.ID == service.ID {
			s.services[i] = service
			return nil
		}
	}
	return domainerror.ErrServiceNotFound
}

// Delete removes a service from the catalog.
func (s *serviceStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, svc := range s.services {
		if svc.ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrServiceNotFound
}

// List returns all services in insertion order.
func (s *serviceStore) List(ctx context.Context) ([]*entity.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Service, len(s.services))
	copy(out, s.services)
	return out, nil
}

// MaxCode returns the highest numeric display code, 0 when the catalog is
// empty. Non-numeric codes are ignored.
func (s *serviceStore) MaxCode(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	max := 0
	for _, svc := range s.services {
		if n, err := strconv.Atoi(svc.Code); err == nil && n > max {
			max = n
		}
	}
	return max, nil
}
