package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// appointmentStore implements the adapter.AppointmentRepository interface.
// Insertion order doubles as the tiebreak for schedule-stable sorting, so
// the store assigns a monotonic sequence on Create and never renumbers.
type appointmentStore struct {
	mu           sync.RWMutex
	appointments []*entity.Appointment
	nextSeq      int
}

// NewAppointmentStore creates an empty in-memory appointment store.
func NewAppointmentStore() adapter.AppointmentRepository {
	return &appointmentStore{}
}

// Create adds an appointment, assigning its insertion sequence.
func (s *appointmentStore) Create(ctx context.Context, appointment *entity.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	appointment.Seq = s.nextSeq
	s.nextSeq++
	s.appointments = append(s.appointments, appointment)
	return nil
}

// FindByID retrieves an appointment by its ID.
func (s *appointmentStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domainerror.ErrAppointmentNotFound
}

// Update replaces a stored appointment, preserving its sequence.
func (s *appointmentStore) Update(ctx context.Context, appointment *entity.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.appointments {
		if a.ID == appointment.ID {
			appointment.Seq = a.Seq
			s.appointments[i] = appointment
			return nil
		}
	}
	return domainerror.ErrAppointmentNotFound
}

// Delete removes an appointment. Sequences of the remaining appointments are
// untouched.
func (s *appointmentStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.appointments {
		if a.ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrAppointmentNotFound
}

// List returns all appointments in insertion order.
func (s *appointmentStore) List(ctx context.Context) ([]*entity.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out, nil
}
