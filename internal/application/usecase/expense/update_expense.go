// Package expense contains expense registry use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/barber-manager/backend/internal/application/adapter"
	"github.com/barber-manager/backend/internal/domain/entity"
	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/domain/valueobject"
)

// UpdateExpenseInput represents the input for expense update: a full replace
// of every field except identity.
type UpdateExpenseInput struct {
	ID          uuid.UUID
	Description string
	AmountText  string
	Date        time.Time
	Category    entity.ExpenseCategory
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *ExpenseOutput
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	exp, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if input.Description == "" || input.AmountText == "" || input.Date.IsZero() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseMissingFields,
			"description, amount and date are required",
			domainerror.ErrExpenseMissingFields,
		)
	}

	category := input.Category
	if category == "" {
		category = exp.Category
	}
	if !entity.ValidExpenseCategory(category) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			fmt.Sprintf("invalid expense category %q", category),
			domainerror.ErrInvalidExpenseCategory,
		)
	}

	exp.Description = input.Description
	exp.Amount = valueobject.ParseAmount(input.AmountText)
	exp.Date = input.Date
	exp.Category = category

	if err := uc.expenseRepo.Update(ctx, exp); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: toExpenseOutput(exp)}, nil
}
