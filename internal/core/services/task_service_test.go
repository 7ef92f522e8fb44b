package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/variohq/reno_backend/internal/apperrors"
	"github.com/variohq/reno_backend/internal/core/domain"
	portsrepo "github.com/variohq/reno_backend/internal/core/ports/repositories"
	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/core/services"
	"github.com/variohq/reno_backend/internal/dto"
)

// MockTaskRepository is a mock type for the TaskRepositoryFacade interface
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

func (m *MockTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) ListTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

var _ portsrepo.TaskRepositoryFacade = (*MockTaskRepository)(nil)

// --- Test Suite Setup ---

type TaskServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockTaskRepository
	service   portssvc.TaskSvcFacade
	projectID string
	userID    string
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTaskRepository)
	suite.service = services.NewTaskService(suite.mockRepo)
	suite.projectID = uuid.NewString()
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *TaskServiceTestSuite) TestCreateTask_DerivesPhaseOrder() {
	ctx := context.Background()
	req := dto.CreateTaskRequest{
		Phase: "Painting",
		Title: "Paint living room",
	}

	suite.mockRepo.On("SaveTask", ctx, mock.AnythingOfType("domain.Task")).Return(nil).Once()

	created, err := suite.service.CreateTask(ctx, suite.projectID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Painting", created.Phase)
	suite.Equal(7, created.PhaseOrder)
	suite.Equal(domain.TaskNotStarted, created.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestCreateTask_UnknownPhase() {
	ctx := context.Background()
	req := dto.CreateTaskRequest{
		Phase: "Landscaping",
		Title: "Plant a hedge",
	}

	created, err := suite.service.CreateTask(ctx, suite.projectID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTask", mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestSeedDefaultTasks_CreatesFullPipeline() {
	ctx := context.Background()

	suite.mockRepo.On("ListTasks", ctx, suite.projectID).Return([]domain.Task{}, nil).Once()
	suite.mockRepo.On("SaveTasks", ctx, mock.AnythingOfType("[]domain.Task")).Return(nil).Once()

	seeded, err := suite.service.SeedDefaultTasks(ctx, suite.projectID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(seeded, len(domain.TaskPhases))
	suite.Equal("Civil/Masonry", seeded[0].Phase)
	suite.Equal(1, seeded[0].PhaseOrder)
	suite.Equal("Deep Cleaning", seeded[len(seeded)-1].Phase)
	for _, task := range seeded {
		suite.Equal(domain.TaskNotStarted, task.Status)
		suite.Equal(task.Phase, task.Title)
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestSeedDefaultTasks_RefusesNonEmptyProject() {
	ctx := context.Background()
	existing := []domain.Task{{TaskID: uuid.NewString(), ProjectID: suite.projectID, Phase: "Electrical"}}

	suite.mockRepo.On("ListTasks", ctx, suite.projectID).Return(existing, nil).Once()

	seeded, err := suite.service.SeedDefaultTasks(ctx, suite.projectID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(seeded)
	suite.True(errors.Is(err, apperrors.ErrDuplicate))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTasks", mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_PhaseChangeRederivesOrder() {
	ctx := context.Background()
	existing := &domain.Task{
		TaskID:     uuid.NewString(),
		ProjectID:  suite.projectID,
		Phase:      "Electrical",
		PhaseOrder: 2,
		Title:      "Wiring",
		Status:     domain.TaskNotStarted,
	}
	newPhase := "Kitchen"

	suite.mockRepo.On("FindTaskByID", ctx, existing.TaskID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTask", ctx, mock.AnythingOfType("domain.Task")).Return(nil).Once()

	updated, err := suite.service.UpdateTask(ctx, suite.projectID, existing.TaskID, dto.UpdateTaskRequest{
		Phase: &newPhase,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Kitchen", updated.Phase)
	suite.Equal(9, updated.PhaseOrder)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
