package repositories

import (
	"context"

	"github.com/variohq/reno_backend/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a specific project by its ID.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjectsByUserID retrieves all projects a user is a member of.
	ListProjectsByUserID(ctx context.Context, userID string) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProject updates an existing project's details.
	UpdateProject(ctx context.Context, project domain.Project) error

	// DeleteProject removes a project and, via cascade, its scoped records.
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectMembershipManager defines operations for managing project memberships
type ProjectMembershipManager interface {
	// AddMember adds a user to a project with a specific role, upserting on conflict.
	AddMember(ctx context.Context, membership domain.ProjectMember) error

	// FindMemberRole retrieves the membership of a user in a project.
	FindMemberRole(ctx context.Context, userID, projectID string) (*domain.ProjectMember, error)

	// ListMembers retrieves all members of a project.
	ListMembers(ctx context.Context, projectID string) ([]domain.ProjectMember, error)

	// RemoveMember removes a user from a project.
	RemoveMember(ctx context.Context, userID, projectID string) error

	// UpdateMemberRole changes a member's role in a project.
	UpdateMemberRole(ctx context.Context, userID, projectID string, role domain.ProjectRole) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
	ProjectMembershipManager
}

// ProjectRepositoryWithTx extends ProjectRepositoryFacade with transaction capabilities
type ProjectRepositoryWithTx interface {
	ProjectRepositoryFacade
	TransactionManager
}
