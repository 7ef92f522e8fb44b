package services

import (
	"context"

	"github.com/variohq/reno_backend/internal/core/domain"
	"github.com/variohq/reno_backend/internal/dto"
)

// TaskReaderSvc defines read operations for task data
type TaskReaderSvc interface {
	// GetTaskByID retrieves a single task after authorization.
	GetTaskByID(ctx context.Context, projectID, taskID, requestingUserID string) (*domain.Task, error)

	// ListTasks retrieves all tasks of a project in phase order.
	ListTasks(ctx context.Context, projectID, requestingUserID string) ([]domain.Task, error)
}

// TaskWriterSvc defines write operations for task data
type TaskWriterSvc interface {
	// CreateTask creates a new task. PhaseOrder is derived from the phase
	// name; unknown phase names are rejected.
	CreateTask(ctx context.Context, projectID string, req dto.CreateTaskRequest, requestingUserID string) (*domain.Task, error)

	// SeedDefaultTasks creates one placeholder task per phase for a fresh
	// project, giving the timeline its full 15-phase skeleton.
	SeedDefaultTasks(ctx context.Context, projectID, requestingUserID string) ([]domain.Task, error)

	// UpdateTask updates an existing task.
	UpdateTask(ctx context.Context, projectID, taskID string, req dto.UpdateTaskRequest, requestingUserID string) (*domain.Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, projectID, taskID, requestingUserID string) error
}

// TaskSvcFacade combines all task-related service interfaces
type TaskSvcFacade interface {
	TaskReaderSvc
	TaskWriterSvc
}
