package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/variohq/reno_backend/internal/apperrors"
	"github.com/variohq/reno_backend/internal/core/domain"
	portsrepo "github.com/variohq/reno_backend/internal/core/ports/repositories"
	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/core/services"
	"github.com/variohq/reno_backend/internal/dto"
)

// MockExpenseRepository is a mock type for the ExpenseRepositoryFacade interface
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) SaveExpenses(ctx context.Context, expenses []domain.Expense) error {
	args := m.Called(ctx, expenses)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, projectID string, filters portsrepo.ExpenseListFilters) ([]domain.Expense, string, error) {
	args := m.Called(ctx, projectID, filters)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Expense), args.String(1), args.Error(2)
}

func (m *MockExpenseRepository) ListAllExpenses(ctx context.Context, projectID string) ([]domain.Expense, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

// --- Test Suite Setup ---

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockExpenseRepository
	service   portssvc.ExpenseSvcFacade
	projectID string
	userID    string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.service = services.NewExpenseService(suite.mockRepo)
	suite.projectID = uuid.NewString()
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestCreateExpense_DerivesAmounts() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Date:        "2025-06-15",
		Category:    "Flooring",
		Item:        "Vitrified tiles",
		Quantity:    40,
		UnitPrice:   decimal.NewFromInt(120),
		AdvancePaid: decimal.NewFromInt(1000),
	}

	suite.mockRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	created, err := suite.service.CreateExpense(ctx, suite.projectID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ExpenseID)
	suite.Equal(suite.projectID, created.ProjectID)
	suite.True(created.Total.Equal(decimal.NewFromInt(4800)), "total = unit price * quantity")
	suite.True(created.Balance.Equal(decimal.NewFromInt(3800)), "balance = total - advance paid")
	suite.Equal(domain.ExpensePending, created.Status)
	suite.Equal(domain.PriorityMustHave, created.Priority)
	suite.Equal(suite.userID, created.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ZeroQuantityDefaultsToOne() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category:  "Painting",
		Item:      "Primer",
		UnitPrice: decimal.NewFromInt(2500),
	}

	suite.mockRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	created, err := suite.service.CreateExpense(ctx, suite.projectID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, created.Quantity)
	suite.True(created.Total.Equal(decimal.NewFromInt(2500)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_UnknownCategory() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category:  "Helicopters",
		Item:      "Helicopter",
		UnitPrice: decimal.NewFromInt(1),
	}

	created, err := suite.service.CreateExpense(ctx, suite.projectID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestImportExpenses_OneBadRowRejectsBatch() {
	ctx := context.Background()
	reqs := []dto.CreateExpenseRequest{
		{Category: "Flooring", Item: "Tiles", UnitPrice: decimal.NewFromInt(100)},
		{Category: "Not A Category", Item: "Mystery", UnitPrice: decimal.NewFromInt(5)},
	}

	imported, err := suite.service.ImportExpenses(ctx, suite.projectID, reqs, suite.userID)

	suite.Require().Error(err)
	suite.Nil(imported)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpenses", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestImportExpenses_Success() {
	ctx := context.Background()
	reqs := []dto.CreateExpenseRequest{
		{Category: "Flooring", Item: "Tiles", Quantity: 10, UnitPrice: decimal.NewFromInt(100)},
		{Category: "Painting", Item: "Paint", Quantity: 4, UnitPrice: decimal.NewFromInt(750)},
	}

	suite.mockRepo.On("SaveExpenses", ctx, mock.AnythingOfType("[]domain.Expense")).Return(nil).Once()

	imported, err := suite.service.ImportExpenses(ctx, suite.projectID, reqs, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(imported, 2)
	suite.True(imported[0].Total.Equal(decimal.NewFromInt(1000)))
	suite.True(imported[1].Total.Equal(decimal.NewFromInt(3000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestGetExpenseByID_WrongProjectReadsAsNotFound() {
	ctx := context.Background()
	expense := &domain.Expense{
		ExpenseID: uuid.NewString(),
		ProjectID: uuid.NewString(), // belongs to a different project
		Item:      "Sofa",
	}

	suite.mockRepo.On("FindExpenseByID", ctx, expense.ExpenseID).Return(expense, nil).Once()

	found, err := suite.service.GetExpenseByID(ctx, suite.projectID, expense.ExpenseID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_RecalculatesAmounts() {
	ctx := context.Background()
	existing := &domain.Expense{
		ExpenseID:   uuid.NewString(),
		ProjectID:   suite.projectID,
		Category:    "Flooring",
		Item:        "Tiles",
		Quantity:    10,
		UnitPrice:   decimal.NewFromInt(100),
		Total:       decimal.NewFromInt(1000),
		AdvancePaid: decimal.NewFromInt(200),
		Balance:     decimal.NewFromInt(800),
		Status:      domain.ExpensePending,
		Priority:    domain.PriorityMustHave,
	}
	newQty := 20

	suite.mockRepo.On("FindExpenseByID", ctx, existing.ExpenseID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, suite.projectID, existing.ExpenseID, dto.UpdateExpenseRequest{
		Quantity: &newQty,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.Total.Equal(decimal.NewFromInt(2000)))
	suite.True(updated.Balance.Equal(decimal.NewFromInt(1800)))
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_Success() {
	ctx := context.Background()
	existing := &domain.Expense{
		ExpenseID: uuid.NewString(),
		ProjectID: suite.projectID,
		Item:      "Wardrobe",
	}

	suite.mockRepo.On("FindExpenseByID", ctx, existing.ExpenseID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteExpense", ctx, existing.ExpenseID).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, suite.projectID, existing.ExpenseID, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
