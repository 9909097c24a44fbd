package dto

import (
	"github.com/barber-manager/backend/internal/domain/entity"
)

// CreateBarberRequest represents the request body for barber registration.
type CreateBarberRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Phone string `json:"phone" binding:"required,min=1,max=30"`
}

// UpdateBarberRequest represents the request body for barber update.
type UpdateBarberRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Phone string `json:"phone" binding:"required,min=1,max=30"`
}

// BarberResponse represents a barber in API responses.
type BarberResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// BarberListResponse represents the response for listing barbers.
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

// CreateClientRequest represents the request body for client registration.
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Phone string `json:"phone" binding:"required,min=1,max=30"`
}

// UpdateClientRequest represents the request body for client update.
type UpdateClientRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Phone string `json:"phone" binding:"required,min=1,max=30"`
}

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ClientListResponse represents the response for listing clients.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToBarberResponse converts a Barber entity to a BarberResponse DTO.
func ToBarberResponse(b *entity.Barber) BarberResponse {
	return BarberResponse{
		ID:    b.ID.String(),
		Code:  b.Code,
		Name:  b.Name,
		Phone: b.Phone,
	}
}

// ToClientResponse converts a Client entity to a ClientResponse DTO.
func ToClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:    c.ID.String(),
		Code:  c.Code,
		Name:  c.Name,
		Phone: c.Phone,
	}
}
