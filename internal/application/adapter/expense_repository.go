// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/domain/entity"
)

// ExpenseRepository is the session-scoped store for expenses.
// Expenses live only for the process lifetime.
type ExpenseRepository interface {
	// Create adds an expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// Update replaces a stored expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all expenses in insertion order.
	List(ctx context.Context) ([]*entity.Expense, error)
}
