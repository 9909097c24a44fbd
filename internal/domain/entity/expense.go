// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies an expense for reporting.
type ExpenseCategory string

const (
	ExpenseCategoryMisc     ExpenseCategory = "Diversos"
	ExpenseCategoryFixed    ExpenseCategory = "Fixa"
	ExpenseCategoryProducts ExpenseCategory = "Produtos"
	ExpenseCategoryBills    ExpenseCategory = "Contas"
	ExpenseCategorySalaries ExpenseCategory = "Salários"
)

// ValidExpenseCategory reports whether the category is one of the known
// expense categories.
func ValidExpenseCategory(c ExpenseCategory) bool {
	switch c {
	case ExpenseCategoryMisc, ExpenseCategoryFixed, ExpenseCategoryProducts, ExpenseCategoryBills, ExpenseCategorySalaries:
		return true
	}
	return false
}

// Expense represents money leaving the shop. Its lifecycle is independent of
// appointments; no invariant links the two collections.
type Expense struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time // day granularity
	Category    ExpenseCategory
}

// NewExpense creates a new Expense entity.
func NewExpense(description string, amount decimal.Decimal, date time.Time, category ExpenseCategory) *Expense {
	return &Expense{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Date:        date,
		Category:    category,
	}
}
