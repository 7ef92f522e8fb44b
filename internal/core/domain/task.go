package domain

import "github.com/shopspring/decimal"

// TaskStatus indicates the state of a single renovation task.
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "Not Started"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
	TaskOnHold     TaskStatus = "On Hold"
	TaskSkipped    TaskStatus = "Skipped"
)

// Task represents a unit of renovation work within one of the fixed phases.
type Task struct {
	TaskID        string          `json:"taskID"`     // Primary Key (e.g., UUID)
	ProjectID     string          `json:"projectID"`  // FK -> projects.project_id
	Phase         string          `json:"phase"`      // One of the 15 fixed phase names
	PhaseOrder    int             `json:"phaseOrder"` // 1-15, derived from the phase table
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Room          string          `json:"room"`
	Status        TaskStatus      `json:"status"`
	Vendor        string          `json:"vendor,omitempty"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	ActualCost    decimal.Decimal `json:"actualCost"`
	StartDate     string          `json:"startDate,omitempty"` // ISO date string
	EndDate       string          `json:"endDate,omitempty"`   // ISO date string
	DependsOn     []string        `json:"dependsOn"`           // Task IDs
	Notes         string          `json:"notes"`
	AuditFields
}
