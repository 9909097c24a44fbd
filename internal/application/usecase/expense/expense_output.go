// Package expense contains expense registry use cases.
package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barber-manager/backend/internal/domain/entity"
	"github.com/barber-manager/backend/internal/domain/valueobject"
)

// ExpenseOutput is the use-case view of an expense.
type ExpenseOutput struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	AmountText  string
	Date        time.Time
	DateLabel   string
	Category    entity.ExpenseCategory
}

func toExpenseOutput(e *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		AmountText:  valueobject.FormatBRL(e.Amount),
		Date:        e.Date,
		DateLabel:   valueobject.FormatDayLabel(e.Date),
		Category:    e.Category,
	}
}
