package dto

import (
	"github.com/barber-manager/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation. The
// amount is display text run through the lenient money parser; the date uses
// YYYY-MM-DD.
type CreateExpenseRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Category    string `json:"category,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Category    string `json:"category,omitempty"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	AmountText  string `json:"amount_text"`
	Date        string `json:"date"`
	DateLabel   string `json:"date_label"`
	Category    string `json:"category"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts an ExpenseOutput to an ExpenseResponse DTO.
func ToExpenseResponse(e *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Description: e.Description,
		Amount:      e.Amount.StringFixed(2),
		AmountText:  e.AmountText,
		Date:        e.Date.Format("2006-01-02"),
		DateLabel:   e.DateLabel,
		Category:    string(e.Category),
	}
}

// ToExpenseListResponse converts a ListExpensesOutput to an ExpenseListResponse DTO.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: expenses}
}
