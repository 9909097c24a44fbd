// Package appointment contains appointment lifecycle and reporting use cases.
package appointment

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barber-manager/backend/internal/domain/entity"
	"github.com/barber-manager/backend/internal/domain/valueobject"
)

// AppointmentOutput is the use-case view of an appointment. Label and
// ServiceSummary are the canonical display renderings; the structured fields
// remain the source of truth.
type AppointmentOutput struct {
	ID              uuid.UUID
	Label           string
	ServiceSummary  string
	Client          string
	Barber          string
	Services        []ServiceLineOutput
	Price           decimal.Decimal
	PriceText       string
	DurationMinutes int
	DurationText    string
	Payment         string
	Status          entity.AppointmentStatus
}

// ServiceLineOutput is one booked service snapshot.
type ServiceLineOutput struct {
	Description     string
	Price           decimal.Decimal
	DurationMinutes int
}

func toAppointmentOutput(a *entity.Appointment) *AppointmentOutput {
	lines := make([]ServiceLineOutput, len(a.Services))
	for i, s := range a.Services {
		lines[i] = ServiceLineOutput{
			Description:     s.Description,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &AppointmentOutput{
		ID:              a.ID,
		Label:           a.Label(),
		ServiceSummary:  a.ServiceSummary(),
		Client:          a.Client,
		Barber:          a.Barber,
		Services:        lines,
		Price:           a.Price,
		PriceText:       valueobject.FormatBRL(a.Price),
		DurationMinutes: a.DurationMinutes,
		DurationText:    a.DurationText(),
		Payment:         a.Payment,
		Status:          a.Status,
	}
}
