package services

import (
	"context"

	"github.com/variohq/reno_backend/internal/core/domain"
	"github.com/variohq/reno_backend/internal/dto"
)

// ProjectReaderSvc defines read operations for project data
type ProjectReaderSvc interface {
	// GetProjectByID retrieves a project the requesting user is a member of.
	GetProjectByID(ctx context.Context, projectID, requestingUserID string) (*domain.Project, error)

	// ListUserProjects retrieves all projects the user belongs to.
	ListUserProjects(ctx context.Context, userID string) ([]domain.Project, error)

	// ListProjectMembers retrieves all members of a project.
	ListProjectMembers(ctx context.Context, projectID, requestingUserID string) ([]domain.ProjectMember, error)
}

// ProjectWriterSvc defines write operations for project data
type ProjectWriterSvc interface {
	// CreateProject persists a new project and enrolls the creator as owner.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)

	// UpdateProject updates a project's details, including budget allocations.
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, requestingUserID string) (*domain.Project, error)

	// DeleteProject removes a project. Owner only.
	DeleteProject(ctx context.Context, projectID, requestingUserID string) error
}

// ProjectMembershipSvc defines operations for managing project membership
type ProjectMembershipSvc interface {
	// AddMember adds a user to a project with a specific role. Owner only.
	AddMember(ctx context.Context, requestingUserID, targetUserID, projectID string, role domain.ProjectRole) error

	// RemoveMember removes a user from a project. Owner only.
	RemoveMember(ctx context.Context, requestingUserID, targetUserID, projectID string) error

	// UpdateMemberRole changes a member's role. Owner only.
	UpdateMemberRole(ctx context.Context, requestingUserID, targetUserID, projectID string, newRole domain.ProjectRole) error
}

// ProjectAuthorizerSvc defines operations for project authorization
type ProjectAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a project.
	AuthorizeUserAction(ctx context.Context, userID, projectID string, requiredRole domain.ProjectRole) error
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
	ProjectMembershipSvc
	ProjectAuthorizerSvc
}
