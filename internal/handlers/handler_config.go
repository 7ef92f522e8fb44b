package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/variohq/reno_backend/internal/core/domain"
)

// ConfigHandler serves the fixed renovation reference data: the 15-phase
// pipeline and the expense category list. Both are global constants.
type ConfigHandler struct{}

// registerPhaseConfigRoutes sets up the read-only reference data routes.
func registerPhaseConfigRoutes(rg *gin.RouterGroup) {
	h := &ConfigHandler{}

	cfg := rg.Group("/config")
	{
		cfg.GET("/phases", h.GetPhases)
		cfg.GET("/categories", h.GetCategories)
	}
}

// CategoriesResponse lists the fixed expense categories and their default
// budget allocations in INR.
type CategoriesResponse struct {
	Categories         []string                   `json:"categories"`
	DefaultAllocations map[string]decimal.Decimal `json:"defaultAllocations"`
}

// GetPhases godoc
// @Summary Get phase configuration
// @Description Retrieves the fixed, ordered 15-phase renovation pipeline with dependencies, durations and timeline colors.
// @Tags config
// @Produce json
// @Success 200 {array} domain.PhaseConfig
// @Security BearerAuth
// @Router /config/phases [get]
func (h *ConfigHandler) GetPhases(c *gin.Context) {
	c.JSON(http.StatusOK, domain.TaskPhases)
}

// GetCategories godoc
// @Summary Get expense categories
// @Description Retrieves the fixed expense category list and the default per-category budget allocations.
// @Tags config
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Security BearerAuth
// @Router /config/categories [get]
func (h *ConfigHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{
		Categories:         domain.ExpenseCategories,
		DefaultAllocations: domain.DefaultBudgetAllocations,
	})
}
