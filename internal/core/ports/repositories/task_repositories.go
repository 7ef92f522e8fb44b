package repositories

import (
	"context"

	"github.com/variohq/reno_backend/internal/core/domain"
)

// TaskReader defines read operations for task data
type TaskReader interface {
	// FindTaskByID retrieves a specific task by its ID.
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)

	// ListTasks retrieves all tasks of a project ordered by phase order,
	// then creation time. The phase rollup relies on this order being
	// stable across recomputations.
	ListTasks(ctx context.Context, projectID string) ([]domain.Task, error)
}

// TaskWriter defines write operations for task data
type TaskWriter interface {
	// SaveTask persists a new task.
	SaveTask(ctx context.Context, task domain.Task) error

	// SaveTasks persists a batch of tasks in one transaction.
	SaveTasks(ctx context.Context, tasks []domain.Task) error

	// UpdateTask updates an existing task.
	UpdateTask(ctx context.Context, task domain.Task) error

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, taskID string) error
}

// TaskRepositoryFacade combines all task-related repository interfaces
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}

// TaskRepositoryWithTx extends TaskRepositoryFacade with transaction capabilities
type TaskRepositoryWithTx interface {
	TaskRepositoryFacade
	TransactionManager
}
