package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/dto"
	"github.com/variohq/reno_backend/internal/middleware"
)

// TaskHandler handles timeline task related requests.
type TaskHandler struct {
	taskService portssvc.TaskSvcFacade
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(ts portssvc.TaskSvcFacade) *TaskHandler {
	return &TaskHandler{taskService: ts}
}

// registerTaskRoutes sets up the task routes under a project scope.
func registerTaskRoutes(project *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := NewTaskHandler(taskService)

	tasks := project.Group("/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.POST("/seed", h.SeedDefaultTasks)
		tasks.GET("", h.ListTasks)
		tasks.GET("/:task_id", h.GetTaskByID)
		tasks.PUT("/:task_id", h.UpdateTask)
		tasks.DELETE("/:task_id", h.DeleteTask)
	}
}

// CreateTask godoc
// @Summary Create task
// @Description Creates a new timeline task. The phase order is derived from the phase name; unknown phase names are rejected.
// @Tags tasks
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), projectID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// SeedDefaultTasks godoc
// @Summary Seed default tasks
// @Description Creates one placeholder task per renovation phase for a fresh project, giving the timeline its full 15-phase skeleton. Fails if the project already has tasks.
// @Tags tasks
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 201 {object} dto.ListTasksResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Project already has tasks"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/tasks/seed [post]
func (h *TaskHandler) SeedDefaultTasks(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	tasks, err := h.taskService.SeedDefaultTasks(c.Request.Context(), projectID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to seed default tasks")
		return
	}
	c.JSON(http.StatusCreated, dto.ToListTasksResponse(tasks))
}

// ListTasks godoc
// @Summary List tasks
// @Description Retrieves all tasks of a project in phase order.
// @Tags tasks
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ListTasksResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), projectID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTasksResponse(tasks))
}

// GetTaskByID godoc
// @Summary Get task
// @Description Retrieves a single task by ID.
// @Tags tasks
// @Produce json
// @Param project_id path string true "Project ID"
// @Param task_id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/tasks/{task_id} [get]
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	projectID := c.Param("project_id")
	taskID := c.Param("task_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	task, err := h.taskService.GetTaskByID(c.Request.Context(), projectID, taskID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// UpdateTask godoc
// @Summary Update task
// @Description Updates an existing task. Changing the phase re-derives the phase order.
// @Tags tasks
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param task_id path string true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/tasks/{task_id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	projectID := c.Param("project_id")
	taskID := c.Param("task_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), projectID, taskID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// DeleteTask godoc
// @Summary Delete task
// @Description Removes a task.
// @Tags tasks
// @Produce json
// @Param project_id path string true "Project ID"
// @Param task_id path string true "Task ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/tasks/{task_id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	projectID := c.Param("project_id")
	taskID := c.Param("task_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), projectID, taskID, userID); err != nil {
		respondWithError(c, err, "Failed to delete task")
		return
	}
	c.Status(http.StatusNoContent)
}
