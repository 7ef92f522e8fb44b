package dto

import (
	"github.com/shopspring/decimal"

	"github.com/variohq/reno_backend/internal/core/domain"
)

// --- Order DTOs ---

// CreateOrderRequest defines data for creating a new order. When IsEMI is
// set, the service generates the monthly schedule from OrderDate,
// EMIMonths and EMIPerMonth.
type CreateOrderRequest struct {
	OrderID     string          `json:"orderID"` // vendor reference number
	Vendor      string          `json:"vendor" binding:"required"`
	OrderDate   string          `json:"orderDate" binding:"omitempty,datetime=2006-01-02"`
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"required"`
	IsEMI       bool            `json:"isEMI"`
	EMIMonths   int             `json:"emiMonths" binding:"omitempty,min=1,max=120"`
	EMIPerMonth decimal.Decimal `json:"emiPerMonth"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
	Status      string          `json:"status" binding:"omitempty,oneof='Placed' 'Processing' 'Delivered' 'Partially Delivered' 'Cancelled'"`
	Items       []string        `json:"items"`
	Notes       string          `json:"notes"`
}

// UpdateOrderRequest defines the data allowed for updating an order.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateOrderRequest struct {
	OrderID     *string          `json:"orderID"`
	Vendor      *string          `json:"vendor"`
	OrderDate   *string          `json:"orderDate" binding:"omitempty,datetime=2006-01-02"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
	IsEMI       *bool            `json:"isEMI"`
	EMIMonths   *int             `json:"emiMonths" binding:"omitempty,min=1,max=120"`
	EMIPerMonth *decimal.Decimal `json:"emiPerMonth"`
	AmountPaid  *decimal.Decimal `json:"amountPaid"`
	Status      *string          `json:"status" binding:"omitempty,oneof='Placed' 'Processing' 'Delivered' 'Partially Delivered' 'Cancelled'"`
	Items       *[]string        `json:"items"`
	Notes       *string          `json:"notes"`
}

// MarkInstallmentPaidRequest marks one EMI installment as paid.
type MarkInstallmentPaidRequest struct {
	Month    int    `json:"month" binding:"required,min=1"`
	PaidDate string `json:"paidDate" binding:"omitempty,datetime=2006-01-02"`
}

// EMIInstallmentDTO is one installment in an order's schedule.
type EMIInstallmentDTO struct {
	Month    int             `json:"month"`
	DueDate  string          `json:"dueDate"`
	Amount   decimal.Decimal `json:"amount"`
	Paid     bool            `json:"paid"`
	PaidDate string          `json:"paidDate,omitempty"`
}

// OrderResponse defines data returned for an order.
type OrderResponse struct {
	ID          string              `json:"id"`
	ProjectID   string              `json:"projectID"`
	OrderID     string              `json:"orderID"`
	Vendor      string              `json:"vendor"`
	OrderDate   string              `json:"orderDate"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	IsEMI       bool                `json:"isEMI"`
	EMIMonths   int                 `json:"emiMonths,omitempty"`
	EMIPerMonth decimal.Decimal     `json:"emiPerMonth,omitempty"`
	EMISchedule []EMIInstallmentDTO `json:"emiSchedule,omitempty"`
	AmountPaid  decimal.Decimal     `json:"amountPaid"`
	Balance     decimal.Decimal     `json:"balance"`
	Status      string              `json:"status"`
	Items       []string            `json:"items,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

// ToOrderResponse converts domain.Order to DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	schedule := make([]EMIInstallmentDTO, len(o.EMISchedule))
	for i, inst := range o.EMISchedule {
		schedule[i] = EMIInstallmentDTO{
			Month:    inst.Month,
			DueDate:  inst.DueDate,
			Amount:   inst.Amount,
			Paid:     inst.Paid,
			PaidDate: inst.PaidDate,
		}
	}
	if len(schedule) == 0 {
		schedule = nil
	}
	return OrderResponse{
		ID:          o.ID,
		ProjectID:   o.ProjectID,
		OrderID:     o.OrderID,
		Vendor:      o.Vendor,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
		IsEMI:       o.IsEMI,
		EMIMonths:   o.EMIMonths,
		EMIPerMonth: o.EMIPerMonth,
		EMISchedule: schedule,
		AmountPaid:  o.AmountPaid,
		Balance:     o.Balance,
		Status:      string(o.Status),
		Items:       o.Items,
		Notes:       o.Notes,
	}
}

// ListOrdersResponse wraps a list of orders.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ToListOrdersResponse converts a slice of domain.Order to DTO.
func ToListOrdersResponse(os []domain.Order) ListOrdersResponse {
	list := make([]OrderResponse, len(os))
	for i, o := range os {
		list[i] = ToOrderResponse(&o)
	}
	return ListOrdersResponse{Orders: list}
}
