package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

// MockProjectRepository is a mock type for the ProjectRepositoryFacade interface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjectsByUserID(ctx context.Context, userID string) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) AddMember(ctx context.Context, membership domain.ProjectMember) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockProjectRepository) FindMemberRole(ctx context.Context, userID, projectID string) (*domain.ProjectMember, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectMember), args.Error(1)
}

func (m *MockProjectRepository) ListMembers(ctx context.Context, projectID string) ([]domain.ProjectMember, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectMember), args.Error(1)
}

func (m *MockProjectRepository) RemoveMember(ctx context.Context, userID, projectID string) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateMemberRole(ctx context.Context, userID, projectID string, role domain.ProjectRole) error {
	args := m.Called(ctx, userID, projectID, role)
	return args.Error(0)
}

var _ portsrepo.ProjectRepositoryFacade = (*MockProjectRepository)(nil)

// --- Test Suite Setup ---

type ProjectServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProjectRepository
	service  portssvc.ProjectSvcFacade
	userID   string
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProjectRepository)
	suite.service = services.NewProjectService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *ProjectServiceTestSuite) expectMembership(userID, projectID string, role domain.ProjectRole) {
	suite.mockRepo.On("FindMemberRole", mock.Anything, userID, projectID).Return(&domain.ProjectMember{
		UserID:    userID,
		ProjectID: projectID,
		Role:      role,
		JoinedAt:  time.Now(),
	}, nil).Once()
}

// --- Test Cases ---

func (suite *ProjectServiceTestSuite) TestCreateProject_EnrollsCreatorAsOwner() {
	ctx := context.Background()
	req := dto.CreateProjectRequest{
		Name:      "2BHK Renovation",
		City:      "Bengaluru",
		BHKType:   "2BHK",
		Rooms:     []string{"Living Room", "Kitchen"},
		BudgetMin: decimal.NewFromInt(800000),
		BudgetMax: decimal.NewFromInt(1200000),
	}

	suite.mockRepo.On("SaveProject", ctx, mock.AnythingOfType("domain.Project")).Return(nil).Once()
	suite.mockRepo.On("AddMember", ctx, mock.MatchedBy(func(m domain.ProjectMember) bool {
		return m.UserID == suite.userID && m.Role == domain.RoleOwner
	})).Return(nil).Once()

	created, err := suite.service.CreateProject(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(created.ProjectID)
	suite.Equal(suite.userID, created.OwnerID)
	suite.Equal(req.Name, created.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_OwnerEnrollFailureIsFatal() {
	ctx := context.Background()
	req := dto.CreateProjectRequest{Name: "Doomed Project"}

	suite.mockRepo.On("SaveProject", ctx, mock.AnythingOfType("domain.Project")).Return(nil).Once()
	suite.mockRepo.On("AddMember", ctx, mock.AnythingOfType("domain.ProjectMember")).Return(errors.New("db down")).Once()

	created, err := suite.service.CreateProject(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_UnknownAllocationCategory() {
	ctx := context.Background()
	req := dto.CreateProjectRequest{
		Name: "Bad Allocations",
		BudgetAllocations: []dto.BudgetAllocationDTO{
			{Category: "Moon Base", Allocated: decimal.NewFromInt(1)},
		},
	}

	created, err := suite.service.CreateProject(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestAuthorize_HigherRolePassesLowerCheck() {
	ctx := context.Background()
	projectID := uuid.NewString()
	suite.expectMembership(suite.userID, projectID, domain.RoleEditor)
	project := &domain.Project{ProjectID: projectID, Name: "Flat 402"}
	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(project, nil).Once()

	// Editor passes the viewer-level check behind GetProjectByID.
	found, err := suite.service.GetProjectByID(ctx, projectID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(projectID, found.ProjectID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestAuthorize_NonMemberGetsForbidden() {
	ctx := context.Background()
	projectID := uuid.NewString()
	suite.mockRepo.On("FindMemberRole", mock.Anything, suite.userID, projectID).Return(nil, apperrors.ErrNotFound).Once()

	found, err := suite.service.GetProjectByID(ctx, projectID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.True(errors.Is(err, apperrors.ErrForbidden))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindProjectByID", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestAuthorize_ViewerCannotEdit() {
	ctx := context.Background()
	projectID := uuid.NewString()
	suite.expectMembership(suite.userID, projectID, domain.RoleViewer)
	newName := "Renamed"

	updated, err := suite.service.UpdateProject(ctx, projectID, dto.UpdateProjectRequest{Name: &newName}, suite.userID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.True(errors.Is(err, apperrors.ErrForbidden))
}

func (suite *ProjectServiceTestSuite) TestDeleteProject_EditorForbidden() {
	ctx := context.Background()
	projectID := uuid.NewString()
	suite.expectMembership(suite.userID, projectID, domain.RoleEditor)

	err := suite.service.DeleteProject(ctx, projectID, suite.userID)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrForbidden))
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteProject", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestAddMember_RejectsSecondOwner() {
	ctx := context.Background()
	projectID := uuid.NewString()
	targetUserID := uuid.NewString()
	suite.expectMembership(suite.userID, projectID, domain.RoleOwner)

	err := suite.service.AddMember(ctx, suite.userID, targetUserID, projectID, domain.RoleOwner)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "AddMember", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestRemoveMember_OwnerCannotBeRemoved() {
	ctx := context.Background()
	projectID := uuid.NewString()
	ownerID := suite.userID
	suite.expectMembership(ownerID, projectID, domain.RoleOwner)
	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(&domain.Project{
		ProjectID: projectID,
		OwnerID:   ownerID,
	}, nil).Once()

	err := suite.service.RemoveMember(ctx, ownerID, ownerID, projectID)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestUpdateMemberRole_Success() {
	ctx := context.Background()
	projectID := uuid.NewString()
	targetUserID := uuid.NewString()
	suite.expectMembership(suite.userID, projectID, domain.RoleOwner)
	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(&domain.Project{
		ProjectID: projectID,
		OwnerID:   suite.userID,
	}, nil).Once()
	suite.mockRepo.On("UpdateMemberRole", ctx, targetUserID, projectID, domain.RoleEditor).Return(nil).Once()

	err := suite.service.UpdateMemberRole(ctx, suite.userID, targetUserID, projectID, domain.RoleEditor)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
