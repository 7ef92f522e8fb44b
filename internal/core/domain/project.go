package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetAllocation is a per-category budget override stored on a project.
// When a project carries allocations, they replace the default allocation
// table for the budget rollup.
type BudgetAllocation struct {
	Category  string          `json:"category"`
	Allocated decimal.Decimal `json:"allocated"`
}

// Project represents a single apartment renovation. It is the aggregate
// root: expenses, orders, tasks and rooms are scoped to exactly one project.
type Project struct {
	ProjectID         string             `json:"projectID"` // Primary Key (e.g., UUID)
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	City              string             `json:"city"`
	BHKType           string             `json:"bhkType"` // e.g. "3BHK"
	Rooms             []string           `json:"rooms"`   // Room names used for the room spend rollup
	BudgetMin         decimal.Decimal    `json:"budgetMin"`
	BudgetMax         decimal.Decimal    `json:"budgetMax"`
	BudgetAllocations []BudgetAllocation `json:"budgetAllocations,omitempty"`
	OwnerID           string             `json:"ownerID"` // UserID of the project owner
	AuditFields
}

// ProjectRole defines the possible roles a user can have within a project.
type ProjectRole string

const (
	RoleOwner  ProjectRole = "OWNER"
	RoleEditor ProjectRole = "EDITOR"
	RoleViewer ProjectRole = "VIEWER"
)

// ProjectMember represents the membership of a User in a Project.
type ProjectMember struct {
	UserID    string      `json:"userID"`    // FK -> users.user_id
	UserName  string      `json:"userName"`  // Name of the user
	ProjectID string      `json:"projectID"` // FK -> projects.project_id
	Role      ProjectRole `json:"role"`
	JoinedAt  time.Time   `json:"joinedAt"`
}
