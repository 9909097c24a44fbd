// Package expense contains expense registry use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/domain/valueobject"
)

// CreateExpenseInput represents the input for expense creation. The amount
// arrives as free text and goes through the lenient money parser; Date is day
// granularity.
type CreateExpenseInput struct {
	Description string
	AmountText  string
	Date        time.Time
	Category    entity.ExpenseCategory
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *ExpenseOutput
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation. An omitted category defaults to
// Diversos; an unknown one is rejected.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.Description == "" || input.AmountText == "" || input.Date.IsZero() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseMissingFields,
			"description, amount and date are required",
			domainerror.ErrExpenseMissingFields,
		)
	}

	category := input.Category
	if category == "" {
		category = entity.ExpenseCategoryMisc
	}
	if !entity.ValidExpenseCategory(category) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			fmt.Sprintf("invalid expense category %q", category),
			domainerror.ErrInvalidExpenseCategory,
		)
	}

	exp := entity.NewExpense(input.Description, valueobject.ParseAmount(input.AmountText), input.Date, category)

	if err := uc.expenseRepo.Create(ctx, exp); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: toExpenseOutput(exp)}, nil
}
