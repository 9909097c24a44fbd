// Package error defines domain-specific errors for the Barber Manager application.
package error

import "errors"

// Appointment domain errors.
var (
	// ErrAppointmentNotFound is returned when an appointment is not found.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAppointmentMissingFields is returned when client, barber or schedule is absent.
	ErrAppointmentMissingFields = errors.New("client, barber and schedule are required")

	// ErrAppointmentNoServices is returned when a booking has no service lines.
	ErrAppointmentNoServices = errors.New("at least one service is required")

	// ErrUnresolvedService is returned when a booked service line does not
	// match any catalog entry.
	ErrUnresolvedService = errors.New("service does not match a catalog entry")

	// ErrUnknownPeriodKind is returned when the period filter kind is not
	// daily, weekly or range.
	ErrUnknownPeriodKind = errors.New("unknown period filter kind")

	// ErrMissingPeriodBounds is returned when a range filter lacks its start
	// or end day.
	ErrMissingPeriodBounds = errors.New("range filter requires start and end days")
)

// AppointmentErrorCode defines error codes for appointment errors.
// Format: APT-XXYYYY where XX is category and YYYY is specific error.
type AppointmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAppointmentMissingFields AppointmentErrorCode = "APT-010001"
	ErrCodeAppointmentNoServices    AppointmentErrorCode = "APT-010002"
	ErrCodeUnresolvedService        AppointmentErrorCode = "APT-010003"
	ErrCodeUnknownPeriodKind        AppointmentErrorCode = "APT-010004"
	ErrCodeMissingPeriodBounds      AppointmentErrorCode = "APT-010005"

	// Lookup errors (02XXXX)
	ErrCodeAppointmentNotFound AppointmentErrorCode = "APT-020001"
)

// AppointmentError represents an appointment error with code and message.
type AppointmentError struct {
	Code    AppointmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppointmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppointmentError) Unwrap() error {
	return e.Err
}

// NewAppointmentError creates a new AppointmentError with the given code and message.
func NewAppointmentError(code AppointmentErrorCode, message string, err error) *AppointmentError {
	return &AppointmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
