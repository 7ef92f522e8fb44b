package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/middleware"
)

// DashboardHandler serves the derived dashboard views. Everything it returns
// is recomputed from the project's records on each request; nothing derived
// is persisted.
type DashboardHandler struct {
	insightsService portssvc.InsightsSvcFacade
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(is portssvc.InsightsSvcFacade) *DashboardHandler {
	return &DashboardHandler{insightsService: is}
}

// registerDashboardRoutes sets up the dashboard routes under a project scope.
func registerDashboardRoutes(project *gin.RouterGroup, insightsService portssvc.InsightsSvcFacade) {
	h := NewDashboardHandler(insightsService)

	dashboard := project.Group("/dashboard")
	{
		dashboard.GET("", h.GetDashboard)
		dashboard.GET("/budget", h.GetBudgetSummary)
		dashboard.GET("/phases", h.GetPhaseSummary)
		dashboard.GET("/cashflow", h.GetCashflowSummary)
		dashboard.GET("/alerts", h.GetAlerts)
		dashboard.GET("/activity", h.GetRecentActivity)
	}
}

// GetDashboard godoc
// @Summary Get full dashboard
// @Description Computes every dashboard view (budget, phases, cashflow, alerts, recent activity, room spends) over one consistent snapshot of the project's records.
// @Tags dashboard
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} domain.DashboardSummary
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	summary, err := h.insightsService.GetDashboard(c.Request.Context(), projectID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetBudgetSummary godoc
// @Summary Get budget summary
// @Description Computes the per-category budget usage rollup plus the needs/wants split.
// @Tags dashboard
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} domain.BudgetSummary
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/dashboard/budget [get]
func (h *DashboardHandler) GetBudgetSummary(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	summary, err := h.insightsService.GetBudgetSummary(c.Request.Context(), projectID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute budget summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetPhaseSummary godoc
// @Summary Get phase summary
// @Description Computes the derived state of the 15-phase renovation pipeline, including blocked phases and per-phase costs.
// @Tags dashboard
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} domain.PhaseSummary
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/dashboard/phases [get]
func (h *DashboardHandler) GetPhaseSummary(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	summary, err := h.insightsService.GetPhaseSummary(c.Request.Context(), projectID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute phase summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetCashflowSummary godoc
// @Summary Get cashflow summary
// @Description Computes order balances, the monthly EMI load and the upcoming-payment queue.
// @Tags dashboard
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} domain.CashflowSummary
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/dashboard/cashflow [get]
func (h *DashboardHandler) GetCashflowSummary(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	summary, err := h.insightsService.GetCashflowSummary(c.Request.Context(), projectID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute cashflow summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetAlerts godoc
// @Summary Get dashboard alerts
// @Description Regenerates the dashboard alert list (budget overruns, overdue installments, phase warnings).
// @Tags dashboard
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {array} domain.Alert
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/dashboard/alerts [get]
func (h *DashboardHandler) GetAlerts(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	alerts, err := h.insightsService.GetAlerts(c.Request.Context(), projectID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute alerts")
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// GetRecentActivity godoc
// @Summary Get recent activity
// @Description Computes the merged expense/order recent-activity feed, newest first.
// @Tags dashboard
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {array} domain.ActivityItem
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/dashboard/activity [get]
func (h *DashboardHandler) GetRecentActivity(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	activity, err := h.insightsService.GetRecentActivity(c.Request.Context(), projectID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute recent activity")
		return
	}
	c.JSON(http.StatusOK, activity)
}
