package services

import (
	"context"

	"github.com/variohq/reno_backend/internal/core/domain"
)

// InsightsReaderSvc computes derived dashboard data over a fresh snapshot
// of a project's records. Every call recomputes from scratch; nothing
// derived is ever persisted.
type InsightsReaderSvc interface {
	// GetDashboard loads a full snapshot and runs every aggregator over it.
	GetDashboard(ctx context.Context, projectID, requestingUserID string) (*domain.DashboardSummary, error)

	// GetBudgetSummary computes the per-category budget usage rollup.
	GetBudgetSummary(ctx context.Context, projectID, requestingUserID string) (*domain.BudgetSummary, error)

	// GetPhaseSummary computes the derived 15-phase pipeline state.
	GetPhaseSummary(ctx context.Context, projectID, requestingUserID string) (*domain.PhaseSummary, error)

	// GetCashflowSummary computes order balances and the EMI payment queue.
	GetCashflowSummary(ctx context.Context, projectID, requestingUserID string) (*domain.CashflowSummary, error)

	// GetAlerts regenerates the dashboard alert list.
	GetAlerts(ctx context.Context, projectID, requestingUserID string) ([]domain.Alert, error)

	// GetRecentActivity computes the merged recent-activity feed.
	GetRecentActivity(ctx context.Context, projectID, requestingUserID string) ([]domain.ActivityItem, error)
}

// InsightsSvcFacade combines all insights-related service interfaces
type InsightsSvcFacade interface {
	InsightsReaderSvc
}
