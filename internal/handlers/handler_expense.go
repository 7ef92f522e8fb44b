package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/variohq/reno_backend/internal/core/domain"
	portsrepo "github.com/variohq/reno_backend/internal/core/ports/repositories"
	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/dto"
	"github.com/variohq/reno_backend/internal/middleware"
)

// ExpenseHandler handles expense related requests.
type ExpenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(es portssvc.ExpenseSvcFacade) *ExpenseHandler {
	return &ExpenseHandler{expenseService: es}
}

// registerExpenseRoutes sets up the expense routes under a project scope.
func registerExpenseRoutes(project *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := NewExpenseHandler(expenseService)

	expenses := project.Group("/expenses")
	{
		expenses.POST("", h.CreateExpense)
		expenses.POST("/import", h.ImportExpenses)
		expenses.GET("", h.ListExpenses)
		expenses.GET("/:expense_id", h.GetExpenseByID)
		expenses.PUT("/:expense_id", h.UpdateExpense)
		expenses.DELETE("/:expense_id", h.DeleteExpense)
	}
}

// CreateExpense godoc
// @Summary Create expense
// @Description Creates a new expense. Total and balance are computed server-side from quantity, unit price and advance paid.
// @Tags expenses
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), projectID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// ImportExpenses godoc
// @Summary Import expenses
// @Description Creates a batch of expenses from normalized spreadsheet rows in a single transaction. One invalid row rejects the whole batch.
// @Tags expenses
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param expenses body dto.ImportExpensesRequest true "Expense rows"
// @Success 201 {object} dto.ListExpensesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/expenses/import [post]
func (h *ExpenseHandler) ImportExpenses(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.ImportExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	expenses, err := h.expenseService.ImportExpenses(c.Request.Context(), projectID, req.Expenses, userID)
	if err != nil {
		respondWithError(c, err, "Failed to import expenses")
		return
	}
	c.JSON(http.StatusCreated, dto.ToListExpensesResponse(expenses, ""))
}

// ListExpenses godoc
// @Summary List expenses
// @Description Retrieves a filtered, keyset-paginated page of a project's expenses, newest first.
// @Tags expenses
// @Produce json
// @Param project_id path string true "Project ID"
// @Param category query string false "Filter by category"
// @Param room query string false "Filter by room name"
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param fromDate query string false "Inclusive start date (yyyy-mm-dd)"
// @Param toDate query string false "Inclusive end date (yyyy-mm-dd)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Keyset token from the previous page"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filters := portsrepo.ExpenseListFilters{
		Category:  params.Category,
		Room:      params.Room,
		Status:    domain.ExpenseStatus(params.Status),
		Priority:  domain.Priority(params.Priority),
		FromDate:  params.FromDate,
		ToDate:    params.ToDate,
		Limit:     params.Limit,
		NextToken: params.NextToken,
	}

	expenses, nextToken, err := h.expenseService.ListExpenses(c.Request.Context(), projectID, userID, filters)
	if err != nil {
		respondWithError(c, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses, nextToken))
}

// GetExpenseByID godoc
// @Summary Get expense
// @Description Retrieves a single expense by ID.
// @Tags expenses
// @Produce json
// @Param project_id path string true "Project ID"
// @Param expense_id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/expenses/{expense_id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	projectID := c.Param("project_id")
	expenseID := c.Param("expense_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), projectID, expenseID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// UpdateExpense godoc
// @Summary Update expense
// @Description Updates an existing expense, recomputing total and balance server-side.
// @Tags expenses
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param expense_id path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/expenses/{expense_id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	projectID := c.Param("project_id")
	expenseID := c.Param("expense_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), projectID, expenseID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// DeleteExpense godoc
// @Summary Delete expense
// @Description Removes an expense.
// @Tags expenses
// @Produce json
// @Param project_id path string true "Project ID"
// @Param expense_id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/expenses/{expense_id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	projectID := c.Param("project_id")
	expenseID := c.Param("expense_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), projectID, expenseID, userID); err != nil {
		respondWithError(c, err, "Failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}
