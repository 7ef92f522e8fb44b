package repositories

import (
	"context"

	"github.com/variohq/reno_backend/internal/core/domain"
)

// OrderReader defines read operations for order data
type OrderReader interface {
	// FindOrderByID retrieves a specific order by its ID.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders retrieves all orders of a project, newest first.
	ListOrders(ctx context.Context, projectID string) ([]domain.Order, error)
}

// OrderWriter defines write operations for order data
type OrderWriter interface {
	// SaveOrder persists a new order.
	SaveOrder(ctx context.Context, order domain.Order) error

	// UpdateOrder updates an existing order, including its EMI schedule.
	UpdateOrder(ctx context.Context, order domain.Order) error

	// DeleteOrder removes an order.
	DeleteOrder(ctx context.Context, orderID string) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
