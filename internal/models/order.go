package models

import (
	"github.com/shopspring/decimal"
)

// Order represents a vendor order row. EMISchedule and Items are JSONB
// columns; pgx marshals them through encoding/json.
type Order struct {
	ID          string          `db:"id"`
	ProjectID   string          `db:"project_id"`
	OrderID     string          `db:"order_ref"` // vendor-facing reference, not the PK
	Vendor      string          `db:"vendor"`
	OrderDate   string          `db:"order_date"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	IsEMI       bool            `db:"is_emi"`
	EMIMonths   int             `db:"emi_months"`
	EMIPerMonth decimal.Decimal `db:"emi_per_month"`
	EMISchedule []byte          `db:"emi_schedule"`
	AmountPaid  decimal.Decimal `db:"amount_paid"`
	Balance     decimal.Decimal `db:"balance"`
	Status      string          `db:"status"`
	Items       []byte          `db:"items"`
	Notes       string          `db:"notes"`
	AuditFields
}
