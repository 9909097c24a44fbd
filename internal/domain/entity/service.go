// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service represents a priced, timed service offered by the shop. The catalog
// is the source of truth for per-booking cost and duration lookup.
type Service struct {
	ID              uuid.UUID
	Code            string // display-only two-digit sequence ("01", "02", ...)
	Description     string
	Price           decimal.Decimal
	DurationMinutes int
}

// NewService creates a new Service entity with the given display code.
func NewService(code, description string, price decimal.Decimal, durationMinutes int) *Service {
	return &Service{
		ID:              uuid.New(),
		Code:            code,
		Description:     description,
		Price:           price,
		DurationMinutes: durationMinutes,
	}
}

// Snapshot captures the service's current price and duration for a booking.
// Appointments keep snapshots, never live catalog references, so later edits
// to the catalog cannot rewrite past bookings.
func (s *Service) Snapshot() ServiceSnapshot {
	return ServiceSnapshot{
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

// ServiceSnapshot is the immutable per-booking copy of a catalog service.
type ServiceSnapshot struct {
	Description     string
	Price           decimal.Decimal
	DurationMinutes int
}
