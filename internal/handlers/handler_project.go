package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/variohq/reno_backend/internal/core/domain"
	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/dto"
	"github.com/variohq/reno_backend/internal/middleware"
)

// ProjectHandler handles project and membership related requests.
type ProjectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(ps portssvc.ProjectSvcFacade) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// registerProjectRoutes sets up the project routes plus every project-scoped
// sub-resource (expenses, orders, tasks, rooms, dashboard).
func registerProjectRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewProjectHandler(services.Project)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.CreateProject)
		projects.GET("", h.ListUserProjects)
		projects.GET("/:project_id", h.GetProjectByID)
		projects.PUT("/:project_id", h.UpdateProject)
		projects.DELETE("/:project_id", h.DeleteProject)

		projects.GET("/:project_id/members", h.ListProjectMembers)
		projects.POST("/:project_id/members", h.AddMember)
		projects.PUT("/:project_id/members/:user_id", h.UpdateMemberRole)
		projects.DELETE("/:project_id/members/:user_id", h.RemoveMember)
	}

	scoped := projects.Group("/:project_id")
	registerExpenseRoutes(scoped, services.Expense)
	registerOrderRoutes(scoped, services.Order)
	registerTaskRoutes(scoped, services.Task)
	registerRoomRoutes(scoped, services.Room)
	registerDashboardRoutes(scoped, services.Insights)
}

// CreateProject godoc
// @Summary Create project
// @Description Creates a new renovation project. The creator becomes the project owner.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// ListUserProjects godoc
// @Summary List projects
// @Description Retrieves all projects the authenticated user is a member of.
// @Tags projects
// @Produce json
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) ListUserProjects(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	projects, err := h.projectService.ListUserProjects(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProjectsResponse(projects))
}

// GetProjectByID godoc
// @Summary Get project
// @Description Retrieves a project by ID. Requires membership.
// @Tags projects
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id} [get]
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// UpdateProject godoc
// @Summary Update project
// @Description Updates a project's details, including the per-category budget allocations. Requires the editor role.
// @Tags projects
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// DeleteProject godoc
// @Summary Delete project
// @Description Removes a project and all its records. Owner only.
// @Tags projects
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID, userID); err != nil {
		respondWithError(c, err, "Failed to delete project")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProjectMembers godoc
// @Summary List project members
// @Description Retrieves all members of a project. Requires membership.
// @Tags members
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ListProjectMembersResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/members [get]
func (h *ProjectHandler) ListProjectMembers(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	members, err := h.projectService.ListProjectMembers(c.Request.Context(), projectID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to list project members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProjectMembersResponse(members))
}

// AddMember godoc
// @Summary Add project member
// @Description Adds a user to a project as an editor or viewer. Owner only.
// @Tags members
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param member body dto.AddMemberRequest true "User and role"
// @Success 201 "Created"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "User is already a member"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/members [post]
func (h *ProjectHandler) AddMember(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.projectService.AddMember(c.Request.Context(), userID, req.UserID, projectID, req.Role); err != nil {
		respondWithError(c, err, "Failed to add project member")
		return
	}
	c.Status(http.StatusCreated)
}

// UpdateMemberRole godoc
// @Summary Update member role
// @Description Changes a member's role between editor and viewer. Owner only.
// @Tags members
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param user_id path string true "Member user ID"
// @Param role body dto.UpdateMemberRoleRequest true "New role"
// @Success 200 "OK"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/members/{user_id} [put]
func (h *ProjectHandler) UpdateMemberRole(c *gin.Context) {
	projectID := c.Param("project_id")
	targetUserID := c.Param("user_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.projectService.UpdateMemberRole(c.Request.Context(), userID, targetUserID, projectID, domain.ProjectRole(req.Role)); err != nil {
		respondWithError(c, err, "Failed to update member role")
		return
	}
	c.Status(http.StatusOK)
}

// RemoveMember godoc
// @Summary Remove project member
// @Description Removes a user from a project. Owner only; the owner cannot be removed.
// @Tags members
// @Produce json
// @Param project_id path string true "Project ID"
// @Param user_id path string true "Member user ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/members/{user_id} [delete]
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	projectID := c.Param("project_id")
	targetUserID := c.Param("user_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	if err := h.projectService.RemoveMember(c.Request.Context(), userID, targetUserID, projectID); err != nil {
		respondWithError(c, err, "Failed to remove project member")
		return
	}
	c.Status(http.StatusNoContent)
}
