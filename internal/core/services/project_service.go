package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/variohq/reno_backend/internal/apperrors"
	"github.com/variohq/reno_backend/internal/core/domain"
	portsrepo "github.com/variohq/reno_backend/internal/core/ports/repositories"
	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/dto"
)

// roleRank orders project roles for the authorization check. A member with
// a higher-ranked role passes checks for every lower-ranked role.
var roleRank = map[domain.ProjectRole]int{
	domain.RoleViewer: 1,
	domain.RoleEditor: 2,
	domain.RoleOwner:  3,
}

// projectService implements the ProjectSvcFacade. It also serves as the
// project authorizer for every other service.
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade) portssvc.ProjectSvcFacade {
	return &projectService{
		projectRepo: projectRepo,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// AuthorizeUserAction checks membership and role rank for a project. A user
// with no membership gets ErrForbidden rather than ErrNotFound so the
// response does not leak which project IDs exist.
func (s *projectService) AuthorizeUserAction(ctx context.Context, userID, projectID string, requiredRole domain.ProjectRole) error {
	member, err := s.projectRepo.FindMemberRole(ctx, userID, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "User is not a member of project",
				slog.String("user_id", userID),
				slog.String("project_id", projectID))
			return apperrors.NewForbiddenError("user does not have access to this project")
		}
		s.LogError(ctx, err, "Failed to check project membership",
			slog.String("user_id", userID),
			slog.String("project_id", projectID))
		return err
	}

	if roleRank[member.Role] < roleRank[requiredRole] {
		s.LogWarn(ctx, "User role insufficient for project action",
			slog.String("user_id", userID),
			slog.String("project_id", projectID),
			slog.String("role", string(member.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.NewForbiddenError("insufficient role for this action")
	}
	return nil
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	allocations, err := toDomainAllocations(req.BudgetAllocations)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:         uuid.NewString(),
		Name:              req.Name,
		Description:       req.Description,
		City:              req.City,
		BHKType:           req.BHKType,
		Rooms:             req.Rooms,
		BudgetMin:         req.BudgetMin,
		BudgetMax:         req.BudgetMax,
		BudgetAllocations: allocations,
		OwnerID:           creatorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("project_name", req.Name))
		return nil, err
	}

	membership := domain.ProjectMember{
		UserID:    creatorUserID,
		ProjectID: project.ProjectID,
		Role:      domain.RoleOwner,
		JoinedAt:  now,
	}
	if err := s.projectRepo.AddMember(ctx, membership); err != nil {
		// Without the owner membership the project is unreachable.
		s.LogError(ctx, err, "Failed to enroll creator as project owner",
			slog.String("project_id", project.ProjectID),
			slog.String("user_id", creatorUserID))
		return nil, err
	}

	s.LogInfo(ctx, "Project created",
		slog.String("project_id", project.ProjectID),
		slog.String("owner_id", creatorUserID))
	return &project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID, requestingUserID string) (*domain.Project, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) ListUserProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	return s.projectRepo.ListProjectsByUserID(ctx, userID)
}

func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, requestingUserID string) (*domain.Project, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.City != nil {
		project.City = *req.City
	}
	if req.BHKType != nil {
		project.BHKType = *req.BHKType
	}
	if req.Rooms != nil {
		project.Rooms = *req.Rooms
	}
	if req.BudgetMin != nil {
		project.BudgetMin = *req.BudgetMin
	}
	if req.BudgetMax != nil {
		project.BudgetMax = *req.BudgetMax
	}
	if req.BudgetAllocations != nil {
		allocations, err := toDomainAllocations(req.BudgetAllocations)
		if err != nil {
			return nil, err
		}
		project.BudgetAllocations = allocations
	}
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, projectID, requestingUserID string) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, projectID, domain.RoleOwner); err != nil {
		return err
	}
	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return err
	}
	s.LogInfo(ctx, "Project deleted",
		slog.String("project_id", projectID),
		slog.String("deleted_by", requestingUserID))
	return nil
}

func (s *projectService) ListProjectMembers(ctx context.Context, projectID, requestingUserID string) ([]domain.ProjectMember, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.projectRepo.ListMembers(ctx, projectID)
}

func (s *projectService) AddMember(ctx context.Context, requestingUserID, targetUserID, projectID string, role domain.ProjectRole) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, projectID, domain.RoleOwner); err != nil {
		return err
	}
	if role == domain.RoleOwner {
		return apperrors.NewValidationFailedError("a project has exactly one owner")
	}
	if _, ok := roleRank[role]; !ok {
		return apperrors.NewValidationFailedError("unknown project role: " + string(role))
	}

	membership := domain.ProjectMember{
		UserID:    targetUserID,
		ProjectID: projectID,
		Role:      role,
		JoinedAt:  time.Now(),
	}
	if err := s.projectRepo.AddMember(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add project member",
			slog.String("project_id", projectID),
			slog.String("target_user_id", targetUserID))
		return err
	}
	s.LogInfo(ctx, "Project member added",
		slog.String("project_id", projectID),
		slog.String("target_user_id", targetUserID),
		slog.String("role", string(role)))
	return nil
}

func (s *projectService) RemoveMember(ctx context.Context, requestingUserID, targetUserID, projectID string) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, projectID, domain.RoleOwner); err != nil {
		return err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.OwnerID == targetUserID {
		return apperrors.NewValidationFailedError("the project owner cannot be removed")
	}

	return s.projectRepo.RemoveMember(ctx, targetUserID, projectID)
}

func (s *projectService) UpdateMemberRole(ctx context.Context, requestingUserID, targetUserID, projectID string, newRole domain.ProjectRole) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, projectID, domain.RoleOwner); err != nil {
		return err
	}
	if newRole == domain.RoleOwner {
		return apperrors.NewValidationFailedError("ownership cannot be transferred via role update")
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.OwnerID == targetUserID {
		return apperrors.NewValidationFailedError("the project owner's role cannot be changed")
	}

	return s.projectRepo.UpdateMemberRole(ctx, targetUserID, projectID, newRole)
}

func toDomainAllocations(dtos []dto.BudgetAllocationDTO) ([]domain.BudgetAllocation, error) {
	if len(dtos) == 0 {
		return nil, nil
	}
	allocations := make([]domain.BudgetAllocation, len(dtos))
	for i, a := range dtos {
		if !domain.IsValidCategory(a.Category) {
			return nil, apperrors.NewValidationFailedError("unknown budget category: " + a.Category)
		}
		allocations[i] = domain.BudgetAllocation{Category: a.Category, Allocated: a.Allocated}
	}
	return allocations, nil
}
