package models

import (
	"github.com/shopspring/decimal"
)

// Expense represents a single renovation purchase row.
// Date is stored as an ISO yyyy-mm-dd string, matching how the import
// producer normalizes spreadsheet rows; no time-of-day semantics apply.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	ProjectID   string          `db:"project_id"`
	Item        string          `db:"item"`
	Category    string          `db:"category"`
	Room        string          `db:"room"`
	Vendor      string          `db:"vendor"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Total       decimal.Decimal `db:"total"`
	AdvancePaid decimal.Decimal `db:"advance_paid"`
	Balance     decimal.Decimal `db:"balance"`
	Date        string          `db:"date"`
	Status      string          `db:"status"`
	PaymentMode string          `db:"payment_mode"`
	Priority    string          `db:"priority"`
	OrderID     string          `db:"order_id"`
	Notes       string          `db:"notes"`
	AuditFields
}
