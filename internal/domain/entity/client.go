// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// Client represents a shop customer. The registry feeds the booking form's
// name autocomplete.
type Client struct {
	ID    uuid.UUID
	Code  string // display-only two-digit sequence
	Name  string
	Phone string
}

// NewClient creates a new Client entity.
func NewClient(code, name, phone string) *Client {
	return &Client{
		ID:    uuid.New(),
		Code:  code,
		Name:  name,
		Phone: phone,
	}
}
