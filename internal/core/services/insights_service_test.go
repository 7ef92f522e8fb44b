package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/variohq/reno_backend/internal/core/domain"
	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/core/services"
)

// --- Test Suite Setup ---

type InsightsServiceTestSuite struct {
	suite.Suite
	mockProjectRepo *MockProjectRepository
	mockExpenseRepo *MockExpenseRepository
	mockOrderRepo   *MockOrderRepository
	mockTaskRepo    *MockTaskRepository
	service         portssvc.InsightsSvcFacade
	projectID       string
	userID          string
}

func (suite *InsightsServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockTaskRepo = new(MockTaskRepository)
	suite.service = services.NewInsightsService(
		suite.mockProjectRepo,
		suite.mockExpenseRepo,
		suite.mockOrderRepo,
		suite.mockTaskRepo,
	)
	suite.projectID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *InsightsServiceTestSuite) snapshotFixture() (*domain.Project, []domain.Expense, []domain.Order, []domain.Task) {
	project := &domain.Project{
		ProjectID: suite.projectID,
		Name:      "Flat 402",
		Rooms:     []string{"Living Room", "Kitchen"},
		BudgetAllocations: []domain.BudgetAllocation{
			{Category: "Flooring", Allocated: decimal.NewFromInt(100000)},
		},
	}
	expenses := []domain.Expense{
		{
			ExpenseID: uuid.NewString(),
			ProjectID: suite.projectID,
			Date:      "2025-03-10",
			Category:  "Flooring",
			Room:      "Living Room",
			Item:      "Tiles",
			Quantity:  1,
			UnitPrice: decimal.NewFromInt(40000),
			Total:     decimal.NewFromInt(40000),
			Status:    domain.ExpensePaid,
			Priority:  domain.PriorityMustHave,
		},
	}
	orders := []domain.Order{
		{
			ID:          uuid.NewString(),
			ProjectID:   suite.projectID,
			Vendor:      "Urban Ladder",
			OrderDate:   "2025-03-01",
			TotalAmount: decimal.NewFromInt(60000),
			AmountPaid:  decimal.NewFromInt(20000),
			Balance:     decimal.NewFromInt(40000),
			Status:      domain.OrderPlaced,
		},
	}
	tasks := []domain.Task{
		{
			TaskID:     uuid.NewString(),
			ProjectID:  suite.projectID,
			Phase:      "Civil/Masonry",
			PhaseOrder: 1,
			Title:      "Demolition",
			Status:     domain.TaskCompleted,
		},
		{
			TaskID:     uuid.NewString(),
			ProjectID:  suite.projectID,
			Phase:      "Electrical",
			PhaseOrder: 2,
			Title:      "Wiring",
			Status:     domain.TaskInProgress,
		},
	}
	return project, expenses, orders, tasks
}

// --- Test Cases ---

func (suite *InsightsServiceTestSuite) TestGetDashboard_ComposesAllViews() {
	ctx := context.Background()
	project, expenses, orders, tasks := suite.snapshotFixture()

	suite.mockProjectRepo.On("FindProjectByID", mock.Anything, suite.projectID).Return(project, nil).Once()
	suite.mockExpenseRepo.On("ListAllExpenses", mock.Anything, suite.projectID).Return(expenses, nil).Once()
	suite.mockOrderRepo.On("ListOrders", mock.Anything, suite.projectID).Return(orders, nil).Once()
	suite.mockTaskRepo.On("ListTasks", mock.Anything, suite.projectID).Return(tasks, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, suite.projectID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(dashboard)

	suite.True(dashboard.Budget.TotalSpent.Equal(decimal.NewFromInt(40000)))
	suite.Equal(domain.TaskCompleted, dashboard.Phases.Statuses["Civil/Masonry"])
	suite.Equal("Electrical", dashboard.Phases.CurrentPhase)
	suite.True(dashboard.Cashflow.Outstanding.Equal(decimal.NewFromInt(40000)))
	suite.Require().Len(dashboard.RecentActivity, 2)
	suite.Require().Len(dashboard.RoomSpends, 2)

	suite.mockProjectRepo.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *InsightsServiceTestSuite) TestGetDashboard_SnapshotLoadFailure() {
	ctx := context.Background()
	project, _, orders, tasks := suite.snapshotFixture()
	loadErr := errors.New("connection reset")

	suite.mockProjectRepo.On("FindProjectByID", mock.Anything, suite.projectID).Return(project, nil).Maybe()
	suite.mockExpenseRepo.On("ListAllExpenses", mock.Anything, suite.projectID).Return(nil, loadErr).Once()
	suite.mockOrderRepo.On("ListOrders", mock.Anything, suite.projectID).Return(orders, nil).Maybe()
	suite.mockTaskRepo.On("ListTasks", mock.Anything, suite.projectID).Return(tasks, nil).Maybe()

	dashboard, err := suite.service.GetDashboard(ctx, suite.projectID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(dashboard)
}

func (suite *InsightsServiceTestSuite) TestGetPhaseSummary_LoadsTasksOnly() {
	ctx := context.Background()
	_, _, _, tasks := suite.snapshotFixture()

	suite.mockTaskRepo.On("ListTasks", mock.Anything, suite.projectID).Return(tasks, nil).Once()

	phases, err := suite.service.GetPhaseSummary(ctx, suite.projectID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, phases.CompletedCount)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "FindProjectByID", mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "ListAllExpenses", mock.Anything, mock.Anything)
}

func (suite *InsightsServiceTestSuite) TestGetRecentActivity_MergesExpensesAndOrders() {
	ctx := context.Background()
	_, expenses, orders, _ := suite.snapshotFixture()

	suite.mockExpenseRepo.On("ListAllExpenses", mock.Anything, suite.projectID).Return(expenses, nil).Once()
	suite.mockOrderRepo.On("ListOrders", mock.Anything, suite.projectID).Return(orders, nil).Once()

	activity, err := suite.service.GetRecentActivity(ctx, suite.projectID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(activity, 2)
	// Newest first: the expense on 2025-03-10 precedes the order on 2025-03-01.
	suite.Equal(domain.ActivityExpense, activity[0].Type)
	suite.Equal(domain.ActivityOrder, activity[1].Type)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "ListTasks", mock.Anything, mock.Anything)
}

func TestInsightsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InsightsServiceTestSuite))
}
