package services

import (
	"context"

	"github.com/variohq/reno_backend/internal/core/domain"
	"github.com/variohq/reno_backend/internal/dto"
)

// OrderReaderSvc defines read operations for order data
type OrderReaderSvc interface {
	// GetOrderByID retrieves a single order after authorization.
	GetOrderByID(ctx context.Context, projectID, orderID, requestingUserID string) (*domain.Order, error)

	// ListOrders retrieves all orders of a project, newest first.
	ListOrders(ctx context.Context, projectID, requestingUserID string) ([]domain.Order, error)
}

// OrderWriterSvc defines write operations for order data
type OrderWriterSvc interface {
	// CreateOrder creates a new order. For EMI orders the installment
	// schedule is generated from the order date, months and per-month amount.
	CreateOrder(ctx context.Context, projectID string, req dto.CreateOrderRequest, requestingUserID string) (*domain.Order, error)

	// UpdateOrder updates an existing order. Changing the EMI terms
	// regenerates the unpaid portion of the schedule.
	UpdateOrder(ctx context.Context, projectID, orderID string, req dto.UpdateOrderRequest, requestingUserID string) (*domain.Order, error)

	// MarkInstallmentPaid marks one schedule installment as paid and rolls
	// the payment into the order's paid amount and balance.
	MarkInstallmentPaid(ctx context.Context, projectID, orderID string, month int, paidDate string, requestingUserID string) (*domain.Order, error)

	// DeleteOrder removes an order.
	DeleteOrder(ctx context.Context, projectID, orderID, requestingUserID string) error
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
