package services

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/variohq/reno_backend/internal/core/domain"
	portsrepo "github.com/variohq/reno_backend/internal/core/ports/repositories"
	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/utils/insights"
)

// insightsService implements the InsightsSvcFacade. It never persists
// anything: every call loads a fresh snapshot of the project's records and
// folds the pure aggregators over it.
type insightsService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
	expenseRepo portsrepo.ExpenseRepositoryFacade
	orderRepo   portsrepo.OrderRepositoryFacade
	taskRepo    portsrepo.TaskRepositoryFacade
}

// NewInsightsService creates a new insights service.
func NewInsightsService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	orderRepo portsrepo.OrderRepositoryFacade,
	taskRepo portsrepo.TaskRepositoryFacade,
	opts ...ServiceOption,
) portssvc.InsightsSvcFacade {
	svc := &insightsService{
		projectRepo: projectRepo,
		expenseRepo: expenseRepo,
		orderRepo:   orderRepo,
		taskRepo:    taskRepo,
	}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

var _ portssvc.InsightsSvcFacade = (*insightsService)(nil)

// projectSnapshot is one consistent read of everything the aggregators
// consume.
type projectSnapshot struct {
	project  *domain.Project
	expenses []domain.Expense
	orders   []domain.Order
	tasks    []domain.Task
}

// loadSnapshot fetches the project's records concurrently. The four loads
// are independent; the first failure cancels the rest.
func (s *insightsService) loadSnapshot(ctx context.Context, projectID string) (*projectSnapshot, error) {
	snap := &projectSnapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		project, err := s.projectRepo.FindProjectByID(gctx, projectID)
		if err != nil {
			return err
		}
		snap.project = project
		return nil
	})
	g.Go(func() error {
		expenses, err := s.expenseRepo.ListAllExpenses(gctx, projectID)
		if err != nil {
			return err
		}
		snap.expenses = expenses
		return nil
	})
	g.Go(func() error {
		orders, err := s.orderRepo.ListOrders(gctx, projectID)
		if err != nil {
			return err
		}
		snap.orders = orders
		return nil
	})
	g.Go(func() error {
		tasks, err := s.taskRepo.ListTasks(gctx, projectID)
		if err != nil {
			return err
		}
		snap.tasks = tasks
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load project snapshot", slog.String("project_id", projectID))
		return nil, err
	}
	return snap, nil
}

func (s *insightsService) budgetFromSnapshot(snap *projectSnapshot) domain.BudgetSummary {
	allocations := insights.AllocationTable(snap.project.BudgetAllocations, domain.DefaultBudgetAllocations)
	return insights.SummarizeBudget(snap.expenses, domain.ExpenseCategories, allocations)
}

func (s *insightsService) GetDashboard(ctx context.Context, projectID, requestingUserID string) (*domain.DashboardSummary, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, projectID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	budget := s.budgetFromSnapshot(snap)
	phases := insights.SummarizePhases(snap.tasks, domain.TaskPhases)

	return &domain.DashboardSummary{
		Budget:         budget,
		Phases:         phases,
		Cashflow:       insights.SummarizeCashflow(snap.orders, now),
		Alerts:         insights.GenerateAlerts(budget, snap.expenses, snap.orders, phases, now),
		RecentActivity: insights.MergeRecentActivity(snap.expenses, snap.orders),
		RoomSpends:     insights.SummarizeRooms(snap.project.Rooms, snap.expenses),
	}, nil
}

func (s *insightsService) GetBudgetSummary(ctx context.Context, projectID, requestingUserID string) (*domain.BudgetSummary, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, projectID)
	if err != nil {
		return nil, err
	}
	budget := s.budgetFromSnapshot(snap)
	return &budget, nil
}

func (s *insightsService) GetPhaseSummary(ctx context.Context, projectID, requestingUserID string) (*domain.PhaseSummary, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListTasks(ctx, projectID)
	if err != nil {
		return nil, err
	}
	phases := insights.SummarizePhases(tasks, domain.TaskPhases)
	return &phases, nil
}

func (s *insightsService) GetCashflowSummary(ctx context.Context, projectID, requestingUserID string) (*domain.CashflowSummary, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListOrders(ctx, projectID)
	if err != nil {
		return nil, err
	}
	cashflow := insights.SummarizeCashflow(orders, time.Now())
	return &cashflow, nil
}

func (s *insightsService) GetAlerts(ctx context.Context, projectID, requestingUserID string) ([]domain.Alert, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, projectID)
	if err != nil {
		return nil, err
	}
	budget := s.budgetFromSnapshot(snap)
	phases := insights.SummarizePhases(snap.tasks, domain.TaskPhases)
	return insights.GenerateAlerts(budget, snap.expenses, snap.orders, phases, time.Now()), nil
}

func (s *insightsService) GetRecentActivity(ctx context.Context, projectID, requestingUserID string) ([]domain.ActivityItem, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}

	snap := &projectSnapshot{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		expenses, err := s.expenseRepo.ListAllExpenses(gctx, projectID)
		if err != nil {
			return err
		}
		snap.expenses = expenses
		return nil
	})
	g.Go(func() error {
		orders, err := s.orderRepo.ListOrders(gctx, projectID)
		if err != nil {
			return err
		}
		snap.orders = orders
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return insights.MergeRecentActivity(snap.expenses, snap.orders), nil
}
