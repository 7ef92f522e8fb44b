package dto

import (
	"github.com/shopspring/decimal"

	"github.com/variohq/reno_backend/internal/core/domain"
)

// --- Task DTOs ---

// CreateTaskRequest defines data for creating a new task. PhaseOrder is
// derived from Phase; callers never supply it.
type CreateTaskRequest struct {
	Phase         string          `json:"phase" binding:"required,taskphase"`
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	Room          string          `json:"room"`
	Status        string          `json:"status" binding:"omitempty,oneof='Not Started' 'In Progress' 'Completed' 'On Hold' 'Skipped'"`
	Vendor        string          `json:"vendor"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	ActualCost    decimal.Decimal `json:"actualCost"`
	StartDate     string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate       string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	DependsOn     []string        `json:"dependsOn"`
	Notes         string          `json:"notes"`
}

// UpdateTaskRequest defines the data allowed for updating a task.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateTaskRequest struct {
	Phase         *string          `json:"phase" binding:"omitempty,taskphase"`
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	Room          *string          `json:"room"`
	Status        *string          `json:"status" binding:"omitempty,oneof='Not Started' 'In Progress' 'Completed' 'On Hold' 'Skipped'"`
	Vendor        *string          `json:"vendor"`
	EstimatedCost *decimal.Decimal `json:"estimatedCost"`
	ActualCost    *decimal.Decimal `json:"actualCost"`
	StartDate     *string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	DependsOn     *[]string        `json:"dependsOn"`
	Notes         *string          `json:"notes"`
}

// TaskResponse defines data returned for a task.
type TaskResponse struct {
	TaskID        string          `json:"taskID"`
	ProjectID     string          `json:"projectID"`
	Phase         string          `json:"phase"`
	PhaseOrder    int             `json:"phaseOrder"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Room          string          `json:"room,omitempty"`
	Status        string          `json:"status"`
	Vendor        string          `json:"vendor,omitempty"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	ActualCost    decimal.Decimal `json:"actualCost"`
	StartDate     string          `json:"startDate,omitempty"`
	EndDate       string          `json:"endDate,omitempty"`
	DependsOn     []string        `json:"dependsOn,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// ToTaskResponse converts domain.Task to DTO.
func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:        t.TaskID,
		ProjectID:     t.ProjectID,
		Phase:         t.Phase,
		PhaseOrder:    t.PhaseOrder,
		Title:         t.Title,
		Description:   t.Description,
		Room:          t.Room,
		Status:        string(t.Status),
		Vendor:        t.Vendor,
		EstimatedCost: t.EstimatedCost,
		ActualCost:    t.ActualCost,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
		DependsOn:     t.DependsOn,
		Notes:         t.Notes,
	}
}

// ListTasksResponse wraps a list of tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToListTasksResponse converts a slice of domain.Task to DTO.
func ToListTasksResponse(ts []domain.Task) ListTasksResponse {
	list := make([]TaskResponse, len(ts))
	for i, t := range ts {
		list[i] = ToTaskResponse(&t)
	}
	return ListTasksResponse{Tasks: list}
}
