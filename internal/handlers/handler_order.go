package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/dto"
	"github.com/variohq/reno_backend/internal/middleware"
)

// OrderHandler handles order and EMI related requests.
type OrderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os portssvc.OrderSvcFacade) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// registerOrderRoutes sets up the order routes under a project scope.
func registerOrderRoutes(project *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := NewOrderHandler(orderService)

	orders := project.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:order_id", h.GetOrderByID)
		orders.PUT("/:order_id", h.UpdateOrder)
		orders.POST("/:order_id/installments", h.MarkInstallmentPaid)
		orders.DELETE("/:order_id", h.DeleteOrder)
	}
}

// CreateOrder godoc
// @Summary Create order
// @Description Creates a new vendor order. EMI orders get a monthly installment schedule generated from the order date, months and per-month amount.
// @Tags orders
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), projectID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create order")
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// ListOrders godoc
// @Summary List orders
// @Description Retrieves all orders of a project, newest first.
// @Tags orders
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), projectID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders))
}

// GetOrderByID godoc
// @Summary Get order
// @Description Retrieves a single order by ID.
// @Tags orders
// @Produce json
// @Param project_id path string true "Project ID"
// @Param order_id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/orders/{order_id} [get]
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	projectID := c.Param("project_id")
	orderID := c.Param("order_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	order, err := h.orderService.GetOrderByID(c.Request.Context(), projectID, orderID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve order")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// UpdateOrder godoc
// @Summary Update order
// @Description Updates an existing order. Changing the EMI terms regenerates the unpaid portion of the schedule; paid installments are preserved.
// @Tags orders
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param order_id path string true "Order ID"
// @Param order body dto.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/orders/{order_id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	projectID := c.Param("project_id")
	orderID := c.Param("order_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), projectID, orderID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update order")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// MarkInstallmentPaid godoc
// @Summary Mark EMI installment paid
// @Description Marks one installment of an EMI order as paid and rolls the amount into the order's paid total and balance.
// @Tags orders
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param order_id path string true "Order ID"
// @Param installment body dto.MarkInstallmentPaidRequest true "Installment month and optional paid date"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse "Unknown month or installment already paid"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/orders/{order_id}/installments [post]
func (h *OrderHandler) MarkInstallmentPaid(c *gin.Context) {
	projectID := c.Param("project_id")
	orderID := c.Param("order_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.MarkInstallmentPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderService.MarkInstallmentPaid(c.Request.Context(), projectID, orderID, req.Month, req.PaidDate, userID)
	if err != nil {
		respondWithError(c, err, "Failed to mark installment paid")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// DeleteOrder godoc
// @Summary Delete order
// @Description Removes an order.
// @Tags orders
// @Produce json
// @Param project_id path string true "Project ID"
// @Param order_id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/orders/{order_id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	projectID := c.Param("project_id")
	orderID := c.Param("order_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), projectID, orderID, userID); err != nil {
		respondWithError(c, err, "Failed to delete order")
		return
	}
	c.Status(http.StatusNoContent)
}
