package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/variohq/reno_backend/internal/core/domain"
)

// --- Project DTOs ---

// BudgetAllocationDTO is one per-category budget override.
type BudgetAllocationDTO struct {
	Category  string          `json:"category" binding:"required"`
	Allocated decimal.Decimal `json:"allocated" binding:"required"`
}

// CreateProjectRequest defines data for creating a new project.
type CreateProjectRequest struct {
	Name              string                `json:"name" binding:"required"`
	Description       string                `json:"description"`
	City              string                `json:"city"`
	BHKType           string                `json:"bhkType"`
	Rooms             []string              `json:"rooms"`
	BudgetMin         decimal.Decimal       `json:"budgetMin"`
	BudgetMax         decimal.Decimal       `json:"budgetMax"`
	BudgetAllocations []BudgetAllocationDTO `json:"budgetAllocations" binding:"omitempty,dive"`
}

// UpdateProjectRequest defines the data allowed for updating a project.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateProjectRequest struct {
	Name              *string               `json:"name"`
	Description       *string               `json:"description"`
	City              *string               `json:"city"`
	BHKType           *string               `json:"bhkType"`
	Rooms             *[]string             `json:"rooms"`
	BudgetMin         *decimal.Decimal      `json:"budgetMin"`
	BudgetMax         *decimal.Decimal      `json:"budgetMax"`
	BudgetAllocations []BudgetAllocationDTO `json:"budgetAllocations" binding:"omitempty,dive"`
}

// ProjectResponse defines data returned for a project.
type ProjectResponse struct {
	ProjectID         string                `json:"projectID"`
	Name              string                `json:"name"`
	Description       string                `json:"description"`
	City              string                `json:"city"`
	BHKType           string                `json:"bhkType"`
	Rooms             []string              `json:"rooms"`
	BudgetMin         decimal.Decimal       `json:"budgetMin"`
	BudgetMax         decimal.Decimal       `json:"budgetMax"`
	BudgetAllocations []BudgetAllocationDTO `json:"budgetAllocations,omitempty"`
	OwnerID           string                `json:"ownerID"`
	CreatedAt         time.Time             `json:"createdAt"`
	LastUpdatedAt     time.Time             `json:"lastUpdatedAt"`
}

// ToProjectResponse converts domain.Project to DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	allocations := make([]BudgetAllocationDTO, len(p.BudgetAllocations))
	for i, a := range p.BudgetAllocations {
		allocations[i] = BudgetAllocationDTO{Category: a.Category, Allocated: a.Allocated}
	}
	if len(allocations) == 0 {
		allocations = nil
	}
	return ProjectResponse{
		ProjectID:         p.ProjectID,
		Name:              p.Name,
		Description:       p.Description,
		City:              p.City,
		BHKType:           p.BHKType,
		Rooms:             p.Rooms,
		BudgetMin:         p.BudgetMin,
		BudgetMax:         p.BudgetMax,
		BudgetAllocations: allocations,
		OwnerID:           p.OwnerID,
		CreatedAt:         p.CreatedAt,
		LastUpdatedAt:     p.LastUpdatedAt,
	}
}

// ListProjectsResponse wraps a list of projects.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToListProjectsResponse converts a slice of domain.Project to DTO.
func ToListProjectsResponse(ps []domain.Project) ListProjectsResponse {
	list := make([]ProjectResponse, len(ps))
	for i, p := range ps {
		list[i] = ToProjectResponse(&p)
	}
	return ListProjectsResponse{Projects: list}
}

// --- Project Membership DTOs ---

// AddMemberRequest defines data for adding a user to a project.
type AddMemberRequest struct {
	UserID string             `json:"userID" binding:"required"`
	Role   domain.ProjectRole `json:"role" binding:"required,oneof=EDITOR VIEWER"`
}

// UpdateMemberRoleRequest defines data for changing a member's role.
type UpdateMemberRoleRequest struct {
	Role domain.ProjectRole `json:"role" binding:"required,oneof=EDITOR VIEWER"`
}

// ProjectMemberResponse defines data returned about a project membership.
type ProjectMemberResponse struct {
	UserID    string             `json:"userID"`
	UserName  string             `json:"userName"`
	ProjectID string             `json:"projectID"`
	Role      domain.ProjectRole `json:"role"`
	JoinedAt  time.Time          `json:"joinedAt"`
}

// ToProjectMemberResponse converts domain.ProjectMember to DTO.
func ToProjectMemberResponse(m *domain.ProjectMember) ProjectMemberResponse {
	return ProjectMemberResponse{
		UserID:    m.UserID,
		UserName:  m.UserName,
		ProjectID: m.ProjectID,
		Role:      m.Role,
		JoinedAt:  m.JoinedAt,
	}
}

// ListProjectMembersResponse wraps a list of memberships.
type ListProjectMembersResponse struct {
	Members []ProjectMemberResponse `json:"members"`
}

// ToListProjectMembersResponse converts a slice of domain.ProjectMember to DTO.
func ToListProjectMembersResponse(ms []domain.ProjectMember) ListProjectMembersResponse {
	list := make([]ProjectMemberResponse, len(ms))
	for i, m := range ms {
		list[i] = ToProjectMemberResponse(&m)
	}
	return ListProjectMembersResponse{Members: list}
}
