package domain

import "github.com/shopspring/decimal"

// ExpenseStatus indicates the payment state of an expense.
type ExpenseStatus string

const (
	ExpensePaid          ExpenseStatus = "Paid"
	ExpensePartiallyPaid ExpenseStatus = "Partially Paid"
	ExpensePending       ExpenseStatus = "Pending"
	ExpenseCancelled     ExpenseStatus = "Cancelled"
)

// PaymentMode indicates how an expense was (or will be) paid.
type PaymentMode string

const (
	PaymentCash         PaymentMode = "Cash"
	PaymentUPI          PaymentMode = "UPI"
	PaymentCard         PaymentMode = "Card"
	PaymentBankTransfer PaymentMode = "Bank Transfer"
	PaymentEMI          PaymentMode = "EMI"
	PaymentOther        PaymentMode = "Other"
)

// Priority is the needs-vs-wants classification of an expense.
type Priority string

const (
	PriorityMustHave   Priority = "Must-Have"
	PriorityNiceToHave Priority = "Nice-to-Have"
	PriorityCanSkip    Priority = "Can Skip"
)

// Expense represents a single renovation purchase or payment.
// Total and Balance are derived (Total = Quantity * UnitPrice,
// Balance = Total - AdvancePaid); services recompute them on every write
// and never accept them from callers.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (e.g., UUID)
	ProjectID   string          `json:"projectID"` // FK -> projects.project_id
	Date        string          `json:"date"`      // ISO date string (YYYY-MM-DD)
	Category    string          `json:"category"`  // One of the fixed 16 categories
	Room        string          `json:"room"`      // Soft reference into Project.Rooms
	Item        string          `json:"item"`
	Vendor      string          `json:"vendor"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	AdvancePaid decimal.Decimal `json:"advancePaid"`
	Balance     decimal.Decimal `json:"balance"`
	Status      ExpenseStatus   `json:"status"`
	PaymentMode PaymentMode     `json:"paymentMode"`
	Priority    Priority        `json:"priority"`
	OrderID     string          `json:"orderID,omitempty"` // Optional link to a vendor order
	Notes       string          `json:"notes"`
	AuditFields
}
