// Package expense contains expense registry use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/barber-manager/backend/internal/application/adapter"
)

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute returns all expenses in insertion order.
func (uc *ListExpensesUseCase) Execute(ctx context.Context) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	output := &ListExpensesOutput{Expenses: make([]*ExpenseOutput, 0, len(expenses))}
	for _, e := range expenses {
		output.Expenses = append(output.Expenses, toExpenseOutput(e))
	}
	return output, nil
}
