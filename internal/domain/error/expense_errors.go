// Package error defines domain-specific errors for the Barber Manager application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrExpenseMissingFields is returned when description, amount or date is absent.
	ErrExpenseMissingFields = errors.New("description, amount and date are required")

	// ErrInvalidExpenseCategory is returned for a category outside the known set.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseMissingFields   ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseCategory ExpenseErrorCode = "EXP-010002"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
