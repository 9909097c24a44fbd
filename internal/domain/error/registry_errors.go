// Package error defines domain-specific errors for the Barber Manager application.
package error

import "errors"

// Barber/client registry domain errors.
var (
	// ErrBarberNotFound is returned when a barber is not found.
	ErrBarberNotFound = errors.New("barber not found")

	// ErrClientNotFound is returned when a client is not found.
	ErrClientNotFound = errors.New("client not found")

	// ErrRegistryMissingFields is returned when name or phone is absent.
	ErrRegistryMissingFields = errors.New("name and phone are required")
)

// RegistryErrorCode defines error codes for barber/client registry errors.
// Format: REG-XXYYYY where XX is category and YYYY is specific error.
type RegistryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRegistryMissingFields RegistryErrorCode = "REG-010001"

	// Lookup errors (02XXXX)
	ErrCodeBarberNotFound RegistryErrorCode = "REG-020001"
	ErrCodeClientNotFound RegistryErrorCode = "REG-020002"
)

// RegistryError represents a barber/client registry error with code and message.
type RegistryError struct {
	Code    RegistryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RegistryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RegistryError) Unwrap() error {
	return e.Err
}

// NewRegistryError creates a new RegistryError with the given code and message.
func NewRegistryError(code RegistryErrorCode, message string, err error) *RegistryError {
	return &RegistryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
