package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
)

// expenseStore implements the adapter.ExpenseRepository interface.
type expenseStore struct {
	mu       sync.RWMutex
	expenses []*entity.Expense
}

// NewExpenseStore creates an empty in-memory expense store.
func NewExpenseStore() adapter.ExpenseRepository {
	return &expenseStore{}
}

// Create adds an expense.
func (s *expenseStore) Create(ctx context.Context, expense *entity.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, expense)
	return nil
}

// FindByID retrieves an expense by its ID.
func (s *expenseStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}

// Update replaces a stored expense.
func (s *expenseStore) Update(ctx context.Context, expense *entity.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.expenses {
		if e.ID == expense.ID {
			s.expenses[i] = expense
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}

// Delete removes an expense.
func (s *expenseStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.expenses {
		if e.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}

// List returns all expenses in insertion order.
func (s *expenseStore) List(ctx context.Context) ([]*entity.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out, nil
}
