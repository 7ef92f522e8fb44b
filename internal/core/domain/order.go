package domain

import "github.com/shopspring/decimal"

// OrderStatus indicates the fulfilment state of a vendor order.
type OrderStatus string

const (
	OrderPlaced             OrderStatus = "Placed"
	OrderProcessing         OrderStatus = "Processing"
	OrderDelivered          OrderStatus = "Delivered"
	OrderPartiallyDelivered OrderStatus = "Partially Delivered"
	OrderCancelled          OrderStatus = "Cancelled"
)

// EMIInstallment is a single installment in an order's EMI schedule.
type EMIInstallment struct {
	Month    int             `json:"month"`   // 1-indexed
	DueDate  string          `json:"dueDate"` // ISO date string (YYYY-MM-DD)
	Amount   decimal.Decimal `json:"amount"`
	Paid     bool            `json:"paid"`
	PaidDate string          `json:"paidDate,omitempty"`
}

// Order represents a vendor order, optionally financed via EMI.
// The cashflow rollup tolerates a missing or partial EMISchedule even when
// IsEMI is set.
type Order struct {
	ID          string           `json:"id"`      // Primary Key (e.g., UUID)
	ProjectID   string           `json:"projectID"`
	OrderID     string           `json:"orderID"` // Vendor reference number
	Vendor      string           `json:"vendor"`
	OrderDate   string           `json:"orderDate"` // ISO date string (YYYY-MM-DD)
	TotalAmount decimal.Decimal  `json:"totalAmount"`
	IsEMI       bool             `json:"isEMI"`
	EMIMonths   int              `json:"emiMonths,omitempty"`
	EMIPerMonth decimal.Decimal  `json:"emiPerMonth,omitempty"`
	EMISchedule []EMIInstallment `json:"emiSchedule,omitempty"`
	AmountPaid  decimal.Decimal  `json:"amountPaid"`
	Balance     decimal.Decimal  `json:"balance"` // TotalAmount - AmountPaid, derived
	Status      OrderStatus      `json:"status"`
	Items       []string         `json:"items"` // Brief item descriptions
	Notes       string           `json:"notes"`
	AuditFields
}
