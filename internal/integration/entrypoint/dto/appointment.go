package dto

import (
	"github.com/barber-manager/backend/internal/application/usecase/appointment"
)

// BookAppointmentRequest represents the request body for booking. Schedule
// carries the "DD/MM/YYYY às HH:MM" display text; malformed values fall back
// to the invalid-instant sentinel instead of failing.
type BookAppointmentRequest struct {
	Client   string   `json:"client" binding:"required,min=1,max=100"`
	Barber   string   `json:"barber" binding:"required,min=1,max=100"`
	Schedule string   `json:"schedule" binding:"required"`
	Payment  string   `json:"payment,omitempty"`
	Services []string `json:"services" binding:"required,min=1"`
}

// UpdateAppointmentRequest represents the request body for appointment update.
// The update is a full replacement; status is optional and preserves the
// current value when omitted.
type UpdateAppointmentRequest struct {
	Client   string   `json:"client" binding:"required,min=1,max=100"`
	Barber   string   `json:"barber" binding:"required,min=1,max=100"`
	Schedule string   `json:"schedule" binding:"required"`
	Payment  string   `json:"payment,omitempty"`
	Services []string `json:"services" binding:"required,min=1"`
	Status   string   `json:"status,omitempty" binding:"omitempty,oneof=pendente concluido"`
}

// ServiceLineResponse represents one booked service snapshot.
type ServiceLineResponse struct {
	Description     string `json:"description"`
	Price           string `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
}

// AppointmentResponse represents an appointment in API responses.
type AppointmentResponse struct {
	ID              string                `json:"id"`
	Label           string                `json:"label"`
	ServiceSummary  string                `json:"service_summary"`
	Client          string                `json:"client"`
	Barber          string                `json:"barber"`
	Services        []ServiceLineResponse `json:"services"`
	Price           string                `json:"price"`
	PriceText       string                `json:"price_text"`
	DurationMinutes int                   `json:"duration_minutes"`
	DurationText    string                `json:"duration_text"`
	Payment         string                `json:"payment"`
	Status          string                `json:"status"`
}

// AppointmentListResponse represents the response for listing appointments.
type AppointmentListResponse struct {
	Pending        []AppointmentResponse `json:"pending"`
	Completed      []AppointmentResponse `json:"completed"`
	PendingCount   int                   `json:"pending_count"`
	CompletedCount int                   `json:"completed_count"`
	Revenue        string                `json:"revenue"`
	RevenueText    string                `json:"revenue_text"`
}

// ToAppointmentResponse converts an AppointmentOutput to an AppointmentResponse DTO.
func ToAppointmentResponse(a *appointment.AppointmentOutput) AppointmentResponse {
	services := make([]ServiceLineResponse, len(a.Services))
	for i, s := range a.Services {
		services[i] = ServiceLineResponse{
			Description:     s.Description,
			Price:           s.Price.StringFixed(2),
			DurationMinutes: s.DurationMinutes,
		}
	}

	return AppointmentResponse{
		ID:              a.ID.String(),
		Label:           a.Label,
		ServiceSummary:  a.ServiceSummary,
		Client:          a.Client,
		Barber:          a.Barber,
		Services:        services,
		Price:           a.Price.StringFixed(2),
		PriceText:       a.PriceText,
		DurationMinutes: a.DurationMinutes,
		DurationText:    a.DurationText,
		Payment:         a.Payment,
		Status:          string(a.Status),
	}
}

// ToAppointmentListResponse converts a ListAppointmentsOutput to an AppointmentListResponse DTO.
func ToAppointmentListResponse(output *appointment.ListAppointmentsOutput) AppointmentListResponse {
	pending := make([]AppointmentResponse, len(output.Pending))
	for i, a := range output.Pending {
		pending[i] = ToAppointmentResponse(a)
	}
	completed := make([]AppointmentResponse, len(output.Completed))
	for i, a := range output.Completed {
		completed[i] = ToAppointmentResponse(a)
	}

	return AppointmentListResponse{
		Pending:        pending,
		Completed:      completed,
		PendingCount:   output.PendingCount,
		CompletedCount: output.CompletedCount,
		Revenue:        output.Revenue.StringFixed(2),
		RevenueText:    output.RevenueText,
	}
}
