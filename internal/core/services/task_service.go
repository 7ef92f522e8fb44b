package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/variohq/reno_backend/internal/apperrors"
	"github.com/variohq/reno_backend/internal/core/domain"
	portsrepo "github.com/variohq/reno_backend/internal/core/ports/repositories"
	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/dto"
)

// taskService implements the TaskSvcFacade.
type taskService struct {
	BaseService
	taskRepo portsrepo.TaskRepositoryFacade
}

// NewTaskService creates a new task service.
func NewTaskService(taskRepo portsrepo.TaskRepositoryFacade, opts ...ServiceOption) portssvc.TaskSvcFacade {
	svc := &taskService{
		taskRepo: taskRepo,
	}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) CreateTask(ctx context.Context, projectID string, req dto.CreateTaskRequest, requestingUserID string) (*domain.Task, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return nil, err
	}

	phase, ok := domain.PhaseByName(req.Phase)
	if !ok {
		return nil, apperrors.NewValidationFailedError("unknown renovation phase: " + req.Phase)
	}

	now := time.Now()
	task := domain.Task{
		TaskID:        uuid.NewString(),
		ProjectID:     projectID,
		Phase:         phase.Name,
		PhaseOrder:    phase.Order,
		Title:         req.Title,
		Description:   req.Description,
		Room:          req.Room,
		Status:        domain.TaskStatus(req.Status),
		Vendor:        req.Vendor,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		DependsOn:     req.DependsOn,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if task.Status == "" {
		task.Status = domain.TaskNotStarted
	}

	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to save task", slog.String("project_id", projectID))
		return nil, err
	}
	return &task, nil
}

// SeedDefaultTasks creates one Not Started placeholder task per phase so a
// fresh project starts with the full pipeline skeleton. It refuses to seed
// a project that already has tasks.
func (s *taskService) SeedDefaultTasks(ctx context.Context, projectID, requestingUserID string) ([]domain.Task, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return nil, err
	}

	existing, err := s.taskRepo.ListTasks(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.NewConflictError("project already has tasks")
	}

	now := time.Now()
	tasks := make([]domain.Task, len(domain.TaskPhases))
	for i, phase := range domain.TaskPhases {
		tasks[i] = domain.Task{
			TaskID:      uuid.NewString(),
			ProjectID:   projectID,
			Phase:       phase.Name,
			PhaseOrder:  phase.Order,
			Title:       phase.Name,
			Description: phase.Description,
			Status:      domain.TaskNotStarted,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     requestingUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: requestingUserID,
			},
		}
	}

	if err := s.taskRepo.SaveTasks(ctx, tasks); err != nil {
		s.LogError(ctx, err, "Failed to seed default tasks", slog.String("project_id", projectID))
		return nil, err
	}
	s.LogInfo(ctx, "Seeded default phase tasks",
		slog.String("project_id", projectID),
		slog.Int("task_count", len(tasks)))
	return tasks, nil
}

// findProjectTask fetches a task and verifies it belongs to the project in
// the request path. A mismatch reads as not found.
func (s *taskService) findProjectTask(ctx context.Context, projectID, taskID string) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.ProjectID != projectID {
		return nil, apperrors.ErrNotFound
	}
	return task, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, projectID, taskID, requestingUserID string) (*domain.Task, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.findProjectTask(ctx, projectID, taskID)
}

func (s *taskService) ListTasks(ctx context.Context, projectID, requestingUserID string) ([]domain.Task, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.taskRepo.ListTasks(ctx, projectID)
}

func (s *taskService) UpdateTask(ctx context.Context, projectID, taskID string, req dto.UpdateTaskRequest, requestingUserID string) (*domain.Task, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return nil, err
	}

	task, err := s.findProjectTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Phase != nil {
		phase, ok := domain.PhaseByName(*req.Phase)
		if !ok {
			return nil, apperrors.NewValidationFailedError("unknown renovation phase: " + *req.Phase)
		}
		task.Phase = phase.Name
		task.PhaseOrder = phase.Order
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Room != nil {
		task.Room = *req.Room
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	if req.Vendor != nil {
		task.Vendor = *req.Vendor
	}
	if req.EstimatedCost != nil {
		task.EstimatedCost = *req.EstimatedCost
	}
	if req.ActualCost != nil {
		task.ActualCost = *req.ActualCost
	}
	if req.StartDate != nil {
		task.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		task.EndDate = *req.EndDate
	}
	if req.DependsOn != nil {
		task.DependsOn = *req.DependsOn
	}
	if req.Notes != nil {
		task.Notes = *req.Notes
	}
	task.LastUpdatedAt = time.Now()
	task.LastUpdatedBy = requestingUserID

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to update task", slog.String("task_id", taskID))
		return nil, err
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, projectID, taskID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return err
	}
	if _, err := s.findProjectTask(ctx, projectID, taskID); err != nil {
		return err
	}
	return s.taskRepo.DeleteTask(ctx, taskID)
}
