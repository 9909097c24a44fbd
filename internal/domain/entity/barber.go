// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// Barber represents a staff member appointments can be assigned to.
type Barber struct {
	ID    uuid.UUID
	Code  string // display-only two-digit sequence
	Name  string
	Phone string
}

// NewBarber creates a new Barber entity.
func NewBarber(code, name, phone string) *Barber {
	return &Barber{
		ID:    uuid.New(),
		Code:  code,
		Name:  name,
		Phone: phone,
	}
}
