package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/variohq/reno_backend/internal/apperrors"
	"github.com/variohq/reno_backend/internal/core/domain"
	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/dto"
	"github.com/variohq/reno_backend/internal/handlers"
	"github.com/variohq/reno_backend/pkg/config"
)

// --- Mock ProjectService ---

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) GetProjectByID(ctx context.Context, projectID, requestingUserID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) ListUserProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectService) ListProjectMembers(ctx context.Context, projectID, requestingUserID string) ([]domain.ProjectMember, error) {
	args := m.Called(ctx, projectID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectMember), args.Error(1)
}

func (m *MockProjectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, requestingUserID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) DeleteProject(ctx context.Context, projectID, requestingUserID string) error {
	args := m.Called(ctx, projectID, requestingUserID)
	return args.Error(0)
}

func (m *MockProjectService) AddMember(ctx context.Context, requestingUserID, targetUserID, projectID string, role domain.ProjectRole) error {
	args := m.Called(ctx, requestingUserID, targetUserID, projectID, role)
	return args.Error(0)
}

func (m *MockProjectService) RemoveMember(ctx context.Context, requestingUserID, targetUserID, projectID string) error {
	args := m.Called(ctx, requestingUserID, targetUserID, projectID)
	return args.Error(0)
}

func (m *MockProjectService) UpdateMemberRole(ctx context.Context, requestingUserID, targetUserID, projectID string, newRole domain.ProjectRole) error {
	args := m.Called(ctx, requestingUserID, targetUserID, projectID, newRole)
	return args.Error(0)
}

func (m *MockProjectService) AuthorizeUserAction(ctx context.Context, userID, projectID string, requiredRole domain.ProjectRole) error {
	args := m.Called(ctx, userID, projectID, requiredRole)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- Test Suite ---

type ProjectHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockProjectService *MockProjectService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ProjectHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "reno-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockProjectService = new(MockProjectService)

	// IsProduction keeps the swagger routes out of the test router.
	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true,
	}
	services := &portssvc.ServiceContainer{
		Project: suite.mockProjectService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *ProjectHandlerTestSuite) performRequest(method, url string, body any, userID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ProjectHandlerTestSuite) TestCreateProject_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateProjectRequest{
		Name:      "2BHK Renovation",
		City:      "Bengaluru",
		BHKType:   "2BHK",
		Rooms:     []string{"Living Room", "Kitchen"},
		BudgetMin: decimal.NewFromInt(800000),
		BudgetMax: decimal.NewFromInt(1200000),
	}
	created := &domain.Project{
		ProjectID: uuid.NewString(),
		Name:      reqBody.Name,
		City:      reqBody.City,
		BHKType:   reqBody.BHKType,
		Rooms:     reqBody.Rooms,
		BudgetMin: reqBody.BudgetMin,
		BudgetMax: reqBody.BudgetMax,
		OwnerID:   userID,
	}

	suite.mockProjectService.On("CreateProject",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateProjectRequest) bool { return r.Name == reqBody.Name }),
		userID,
	).Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/projects", reqBody, userID)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ProjectResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ProjectID, resp.ProjectID)
	suite.Equal(userID, resp.OwnerID)
	suite.mockProjectService.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_MissingName() {
	userID := uuid.NewString()

	w := suite.performRequest(http.MethodPost, "/api/v1/projects", map[string]string{"city": "Pune"}, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProjectService.AssertNotCalled(suite.T(), "CreateProject", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectHandlerTestSuite) TestGetProjectByID_Success() {
	userID := uuid.NewString()
	project := &domain.Project{
		ProjectID: uuid.NewString(),
		Name:      "Flat 402",
		OwnerID:   userID,
	}

	suite.mockProjectService.On("GetProjectByID", mock.Anything, project.ProjectID, userID).
		Return(project, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/projects/"+project.ProjectID, nil, userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ProjectResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Flat 402", resp.Name)
	suite.mockProjectService.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestGetProjectByID_NonMemberForbidden() {
	userID := uuid.NewString()
	projectID := uuid.NewString()

	suite.mockProjectService.On("GetProjectByID", mock.Anything, projectID, userID).
		Return(nil, apperrors.NewForbiddenError("user does not have access to this project")).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/projects/"+projectID, nil, userID)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockProjectService.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestListUserProjects_MissingToken() {
	w := suite.performRequest(http.MethodGet, "/api/v1/projects", nil, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProjectService.AssertNotCalled(suite.T(), "ListUserProjects", mock.Anything, mock.Anything)
}

func (suite *ProjectHandlerTestSuite) TestAddMember_DuplicateConflict() {
	userID := uuid.NewString()
	projectID := uuid.NewString()
	reqBody := dto.AddMemberRequest{
		UserID: uuid.NewString(),
		Role:   domain.RoleEditor,
	}

	suite.mockProjectService.On("AddMember", mock.Anything, userID, reqBody.UserID, projectID, domain.RoleEditor).
		Return(apperrors.NewConflictError("user is already a member of this project")).Once()

	url := fmt.Sprintf("/api/v1/projects/%s/members", projectID)
	w := suite.performRequest(http.MethodPost, url, reqBody, userID)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockProjectService.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_Success() {
	userID := uuid.NewString()
	projectID := uuid.NewString()

	suite.mockProjectService.On("DeleteProject", mock.Anything, projectID, userID).
		Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/projects/"+projectID, nil, userID)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockProjectService.AssertExpectations(suite.T())
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
