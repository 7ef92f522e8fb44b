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

// MockOrderRepository is a mock type for the OrderRepositoryFacade interface
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, projectID string) ([]domain.Order, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

var _ portsrepo.OrderRepositoryFacade = (*MockOrderRepository)(nil)

// --- Test Suite Setup ---

type OrderServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockOrderRepository
	service   portssvc.OrderSvcFacade
	projectID string
	userID    string
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOrderRepository)
	suite.service = services.NewOrderService(suite.mockRepo)
	suite.projectID = uuid.NewString()
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *OrderServiceTestSuite) TestCreateOrder_GeneratesEMISchedule() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{
		Vendor:      "Urban Ladder",
		OrderDate:   "2025-01-15",
		TotalAmount: decimal.NewFromInt(60000),
		IsEMI:       true,
		EMIMonths:   6,
	}

	suite.mockRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.Order")).Return(nil).Once()

	created, err := suite.service.CreateOrder(ctx, suite.projectID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(created.EMISchedule, 6)
	// Per-month amount derived by splitting the total evenly.
	suite.True(created.EMIPerMonth.Equal(decimal.NewFromInt(10000)))
	suite.Equal(1, created.EMISchedule[0].Month)
	suite.Equal("2025-02-15", created.EMISchedule[0].DueDate)
	suite.Equal("2025-07-15", created.EMISchedule[5].DueDate)
	suite.False(created.EMISchedule[0].Paid)
	suite.True(created.Balance.Equal(decimal.NewFromInt(60000)))
	suite.Equal(domain.OrderPlaced, created.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_EMIWithoutMonths() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{
		Vendor:      "Livspace",
		TotalAmount: decimal.NewFromInt(90000),
		IsEMI:       true,
	}

	created, err := suite.service.CreateOrder(ctx, suite.projectID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestMarkInstallmentPaid_Success() {
	ctx := context.Background()
	order := &domain.Order{
		ID:          uuid.NewString(),
		ProjectID:   suite.projectID,
		Vendor:      "Urban Ladder",
		TotalAmount: decimal.NewFromInt(30000),
		IsEMI:       true,
		EMIMonths:   3,
		EMIPerMonth: decimal.NewFromInt(10000),
		AmountPaid:  decimal.NewFromInt(10000),
		Balance:     decimal.NewFromInt(20000),
		EMISchedule: []domain.EMIInstallment{
			{Month: 1, DueDate: "2025-02-01", Amount: decimal.NewFromInt(10000), Paid: true, PaidDate: "2025-02-01"},
			{Month: 2, DueDate: "2025-03-01", Amount: decimal.NewFromInt(10000)},
			{Month: 3, DueDate: "2025-04-01", Amount: decimal.NewFromInt(10000)},
		},
	}

	suite.mockRepo.On("FindOrderByID", ctx, order.ID).Return(order, nil).Once()
	suite.mockRepo.On("UpdateOrder", ctx, mock.AnythingOfType("domain.Order")).Return(nil).Once()

	updated, err := suite.service.MarkInstallmentPaid(ctx, suite.projectID, order.ID, 2, "2025-03-02", suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.EMISchedule[1].Paid)
	suite.Equal("2025-03-02", updated.EMISchedule[1].PaidDate)
	suite.True(updated.AmountPaid.Equal(decimal.NewFromInt(20000)))
	suite.True(updated.Balance.Equal(decimal.NewFromInt(10000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestMarkInstallmentPaid_AlreadyPaid() {
	ctx := context.Background()
	order := &domain.Order{
		ID:          uuid.NewString(),
		ProjectID:   suite.projectID,
		TotalAmount: decimal.NewFromInt(10000),
		IsEMI:       true,
		EMISchedule: []domain.EMIInstallment{
			{Month: 1, DueDate: "2025-02-01", Amount: decimal.NewFromInt(10000), Paid: true, PaidDate: "2025-02-01"},
		},
	}

	suite.mockRepo.On("FindOrderByID", ctx, order.ID).Return(order, nil).Once()

	updated, err := suite.service.MarkInstallmentPaid(ctx, suite.projectID, order.ID, 1, "", suite.userID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestMarkInstallmentPaid_UnknownMonth() {
	ctx := context.Background()
	order := &domain.Order{
		ID:          uuid.NewString(),
		ProjectID:   suite.projectID,
		TotalAmount: decimal.NewFromInt(10000),
		EMISchedule: []domain.EMIInstallment{
			{Month: 1, DueDate: "2025-02-01", Amount: decimal.NewFromInt(10000)},
		},
	}

	suite.mockRepo.On("FindOrderByID", ctx, order.ID).Return(order, nil).Once()

	_, err := suite.service.MarkInstallmentPaid(ctx, suite.projectID, order.ID, 7, "", suite.userID)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_DisablingEMIClearsSchedule() {
	ctx := context.Background()
	order := &domain.Order{
		ID:          uuid.NewString(),
		ProjectID:   suite.projectID,
		Vendor:      "Pepperfry",
		TotalAmount: decimal.NewFromInt(20000),
		IsEMI:       true,
		EMIMonths:   2,
		EMIPerMonth: decimal.NewFromInt(10000),
		EMISchedule: []domain.EMIInstallment{
			{Month: 1, DueDate: "2025-02-01", Amount: decimal.NewFromInt(10000)},
			{Month: 2, DueDate: "2025-03-01", Amount: decimal.NewFromInt(10000)},
		},
	}
	noEMI := false

	suite.mockRepo.On("FindOrderByID", ctx, order.ID).Return(order, nil).Once()
	suite.mockRepo.On("UpdateOrder", ctx, mock.AnythingOfType("domain.Order")).Return(nil).Once()

	updated, err := suite.service.UpdateOrder(ctx, suite.projectID, order.ID, dto.UpdateOrderRequest{
		IsEMI: &noEMI,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.False(updated.IsEMI)
	suite.Nil(updated.EMISchedule)
	suite.Equal(0, updated.EMIMonths)
	suite.True(updated.EMIPerMonth.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_RegenerationKeepsPaidInstallments() {
	ctx := context.Background()
	order := &domain.Order{
		ID:          uuid.NewString(),
		ProjectID:   suite.projectID,
		Vendor:      "Urban Ladder",
		OrderDate:   "2025-01-01",
		TotalAmount: decimal.NewFromInt(40000),
		IsEMI:       true,
		EMIMonths:   4,
		EMIPerMonth: decimal.NewFromInt(10000),
		EMISchedule: []domain.EMIInstallment{
			{Month: 1, DueDate: "2025-02-01", Amount: decimal.NewFromInt(10000), Paid: true, PaidDate: "2025-02-03"},
			{Month: 2, DueDate: "2025-03-01", Amount: decimal.NewFromInt(10000)},
			{Month: 3, DueDate: "2025-04-01", Amount: decimal.NewFromInt(10000)},
			{Month: 4, DueDate: "2025-05-01", Amount: decimal.NewFromInt(10000)},
		},
	}
	sixMonths := 6

	suite.mockRepo.On("FindOrderByID", ctx, order.ID).Return(order, nil).Once()
	suite.mockRepo.On("UpdateOrder", ctx, mock.AnythingOfType("domain.Order")).Return(nil).Once()

	updated, err := suite.service.UpdateOrder(ctx, suite.projectID, order.ID, dto.UpdateOrderRequest{
		EMIMonths: &sixMonths,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(updated.EMISchedule, 6)
	suite.True(updated.EMISchedule[0].Paid)
	suite.Equal("2025-02-03", updated.EMISchedule[0].PaidDate)
	suite.False(updated.EMISchedule[1].Paid)
	suite.False(updated.EMISchedule[5].Paid)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestGetOrderByID_WrongProjectReadsAsNotFound() {
	ctx := context.Background()
	order := &domain.Order{
		ID:        uuid.NewString(),
		ProjectID: uuid.NewString(),
	}

	suite.mockRepo.On("FindOrderByID", ctx, order.ID).Return(order, nil).Once()

	found, err := suite.service.GetOrderByID(ctx, suite.projectID, order.ID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
