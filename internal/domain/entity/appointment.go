// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barber-manager/backend/internal/domain/valueobject"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pendente"
	AppointmentStatusCompleted AppointmentStatus = "concluido"
)

// PaymentPending is the payment placeholder for bookings whose payment method
// has not been chosen yet.
const PaymentPending = "Pagamento Pendente"

// Payment methods accepted by the shop.
const (
	PaymentPix        = "Pix"
	PaymentCash       = "Dinheiro"
	PaymentDebitCard  = "Cartão de Débito"
	PaymentCreditCard = "Cartão de Crédito"
)

// Appointment represents a booked visit composed of one or more service
// snapshots. Price and DurationMinutes are aggregates over the snapshots;
// Seq records insertion order and is the tiebreak for schedule-stable
// ordering of the pending queue.
type Appointment struct {
	ID              uuid.UUID
	Schedule        time.Time // zero value == invalid instant sentinel
	Client          string
	Barber          string
	Services        []ServiceSnapshot
	Price           decimal.Decimal
	DurationMinutes int
	Payment         string
	Status          AppointmentStatus
	Seq             int
}

// NewAppointment creates a pending Appointment, computing the aggregate price
// and duration from the service snapshots. Seq is assigned by the store on
// insertion.
func NewAppointment(schedule time.Time, client, barber, payment string, services []ServiceSnapshot) *Appointment {
	if payment == "" {
		payment = PaymentPending
	}

	a := &Appointment{
		ID:       uuid.New(),
		Schedule: schedule,
		Client:   client,
		Barber:   barber,
		Services: services,
		Payment:  payment,
		Status:   AppointmentStatusPending,
	}
	a.recomputeAggregates()
	return a
}

// ReplaceFields replaces every mutable field in place, preserving the
// appointment's identity and sequence. Status is preserved unless the caller
// supplies a non-empty override.
func (a *Appointment) ReplaceFields(schedule time.Time, client, barber, payment string, services []ServiceSnapshot, status AppointmentStatus) {
	if payment == "" {
		payment = PaymentPending
	}
	a.Schedule = schedule
	a.Client = client
	a.Barber = barber
	a.Payment = payment
	a.Services = services
	if status != "" {
		a.Status = status
	}
	a.recomputeAggregates()
}

// Complete transitions a pending appointment to completed. Completing an
// already-completed appointment is a benign no-op; there is no transition out
// of the completed state.
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// HasValidSchedule reports whether the schedule carries a real instant rather
// than the invalid-instant sentinel.
func (a *Appointment) HasValidSchedule() bool {
	return !a.Schedule.IsZero()
}

// Label renders the canonical "DD/MM/YYYY às HH:MM - <client>" display and
// search key.
func (a *Appointment) Label() string {
	return valueobject.FormatScheduleLabel(a.Schedule, a.Client)
}

// ServiceSummary renders the "<services> com <barber>" detail text.
func (a *Appointment) ServiceSummary() string {
	descriptions := make([]string, len(a.Services))
	for i, s := range a.Services {
		descriptions[i] = s.Description
	}
	return valueobject.FormatServiceSummary(descriptions, a.Barber)
}

// ServiceText renders the comma-joined service descriptions without the
// staff attribution.
func (a *Appointment) ServiceText() string {
	descriptions := make([]string, len(a.Services))
	for i, s := range a.Services {
		descriptions[i] = s.Description
	}
	return strings.Join(descriptions, ", ")
}

// DurationText renders the aggregate duration as "<H>h <M>min".
func (a *Appointment) DurationText() string {
	return valueobject.FormatDurationMinutes(a.DurationMinutes)
}

func (a *Appointment) recomputeAggregates() {
	price := decimal.Zero
	minutes := 0
	for _, s := range a.Services {
		price = price.Add(s.Price)
		minutes += s.DurationMinutes
	}
	a.Price = price
	a.DurationMinutes = minutes
}
