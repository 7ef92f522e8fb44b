package dto

import (
	"github.com/shopspring/decimal"

	"github.com/variohq/reno_backend/internal/core/domain"
)

// --- Expense DTOs ---

// CreateExpenseRequest defines data for creating a new expense. Total and
// Balance are never accepted from callers; the service derives them.
type CreateExpenseRequest struct {
	Date        string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Category    string          `json:"category" binding:"required,expensecategory"`
	Room        string          `json:"room"`
	Item        string          `json:"item" binding:"required"`
	Vendor      string          `json:"vendor"`
	Quantity    int             `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	AdvancePaid decimal.Decimal `json:"advancePaid"`
	Status      string          `json:"status" binding:"omitempty,oneof='Paid' 'Partially Paid' 'Pending' 'Cancelled'"`
	PaymentMode string          `json:"paymentMode" binding:"omitempty,oneof='Cash' 'UPI' 'Card' 'Bank Transfer' 'EMI' 'Other'"`
	Priority    string          `json:"priority" binding:"omitempty,expensepriority"`
	OrderID     string          `json:"orderID"`
	Notes       string          `json:"notes"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateExpenseRequest struct {
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Category    *string          `json:"category" binding:"omitempty,expensecategory"`
	Room        *string          `json:"room"`
	Item        *string          `json:"item"`
	Vendor      *string          `json:"vendor"`
	Quantity    *int             `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	AdvancePaid *decimal.Decimal `json:"advancePaid"`
	Status      *string          `json:"status" binding:"omitempty,oneof='Paid' 'Partially Paid' 'Pending' 'Cancelled'"`
	PaymentMode *string          `json:"paymentMode" binding:"omitempty,oneof='Cash' 'UPI' 'Card' 'Bank Transfer' 'EMI' 'Other'"`
	Priority    *string          `json:"priority" binding:"omitempty,expensepriority"`
	OrderID     *string          `json:"orderID"`
	Notes       *string          `json:"notes"`
}

// ImportExpensesRequest carries a batch of normalized spreadsheet rows.
type ImportExpensesRequest struct {
	Expenses []CreateExpenseRequest `json:"expenses" binding:"required,min=1,dive"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Category  string `form:"category"`
	Room      string `form:"room"`
	Status    string `form:"status"`
	Priority  string `form:"priority"`
	FromDate  string `form:"fromDate"`
	ToDate    string `form:"toDate"`
	Limit     int    `form:"limit,default=50"`
	NextToken string `form:"nextToken"`
}

// ExpenseResponse defines data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	ProjectID   string          `json:"projectID"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Room        string          `json:"room,omitempty"`
	Item        string          `json:"item"`
	Vendor      string          `json:"vendor,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	AdvancePaid decimal.Decimal `json:"advancePaid"`
	Balance     decimal.Decimal `json:"balance"`
	Status      string          `json:"status"`
	PaymentMode string          `json:"paymentMode,omitempty"`
	Priority    string          `json:"priority"`
	OrderID     string          `json:"orderID,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// ToExpenseResponse converts domain.Expense to DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		ProjectID:   e.ProjectID,
		Date:        e.Date,
		Category:    e.Category,
		Room:        e.Room,
		Item:        e.Item,
		Vendor:      e.Vendor,
		Quantity:    e.Quantity,
		UnitPrice:   e.UnitPrice,
		Total:       e.Total,
		AdvancePaid: e.AdvancePaid,
		Balance:     e.Balance,
		Status:      string(e.Status),
		PaymentMode: string(e.PaymentMode),
		Priority:    string(e.Priority),
		OrderID:     e.OrderID,
		Notes:       e.Notes,
	}
}

// ListExpensesResponse wraps a page of expenses plus the next keyset token.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToListExpensesResponse converts a page of domain.Expense to DTO.
func ToListExpensesResponse(es []domain.Expense, nextToken string) ListExpensesResponse {
	list := make([]ExpenseResponse, len(es))
	for i, e := range es {
		list[i] = ToExpenseResponse(&e)
	}
	return ListExpensesResponse{Expenses: list, NextToken: nextToken}
}
