// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/domain/entity"
)

// AppointmentRepository is the session-scoped store for appointments.
// Appointments live only for the process lifetime.
type AppointmentRepository interface {
	// Create adds an appointment, assigning its insertion sequence.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// FindByID retrieves an appointment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// Update replaces a stored appointment, preserving its sequence.
	Update(ctx context.Context, appointment *entity.Appointment) error

	// Delete removes an appointment.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all appointments in insertion order.
	List(ctx context.Context) ([]*entity.Appointment, error)
}
