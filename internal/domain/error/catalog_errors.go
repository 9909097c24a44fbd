// Package error defines domain-specific errors for the Barber Manager application.
package error

import "errors"

// Service catalog domain errors.
var (
	// ErrServiceNotFound is returned when a catalog service is not found.
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceMissingFields is returned when description, price or duration is absent.
	ErrServiceMissingFields = errors.New("description, price and duration are required")
)

// CatalogErrorCode defines error codes for service catalog errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CatalogErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeServiceMissingFields CatalogErrorCode = "CAT-010001"

	// Lookup errors (02XXXX)
	ErrCodeServiceNotFound CatalogErrorCode = "CAT-020001"
)

// CatalogError represents a service catalog error with code and message.
type CatalogError struct {
	Code    CatalogErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new CatalogError with the given code and message.
func NewCatalogError(code CatalogErrorCode, message string, err error) *CatalogError {
	return &CatalogError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
