package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/dto"
	"github.com/variohq/reno_backend/internal/middleware"
)

// RoomHandler handles room related requests.
type RoomHandler struct {
	roomService portssvc.RoomSvcFacade
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(rs portssvc.RoomSvcFacade) *RoomHandler {
	return &RoomHandler{roomService: rs}
}

// registerRoomRoutes sets up the room routes under a project scope.
func registerRoomRoutes(project *gin.RouterGroup, roomService portssvc.RoomSvcFacade) {
	h := NewRoomHandler(roomService)

	rooms := project.Group("/rooms")
	{
		rooms.POST("", h.CreateRoom)
		rooms.GET("", h.ListRooms)
		rooms.GET("/:room_id", h.GetRoomByID)
		rooms.PUT("/:room_id", h.UpdateRoom)
		rooms.DELETE("/:room_id", h.DeleteRoom)
	}
}

// CreateRoom godoc
// @Summary Create room
// @Description Creates a new room and registers its name on the project. Room names are unique within a project.
// @Tags rooms
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Room name already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), projectID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create room")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// ListRooms godoc
// @Summary List rooms
// @Description Retrieves all rooms of a project.
// @Tags rooms
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ListRoomsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	projectID := c.Param("project_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	rooms, err := h.roomService.ListRooms(c.Request.Context(), projectID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRoomsResponse(rooms))
}

// GetRoomByID godoc
// @Summary Get room
// @Description Retrieves a single room by ID.
// @Tags rooms
// @Produce json
// @Param project_id path string true "Project ID"
// @Param room_id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/rooms/{room_id} [get]
func (h *RoomHandler) GetRoomByID(c *gin.Context) {
	projectID := c.Param("project_id")
	roomID := c.Param("room_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	room, err := h.roomService.GetRoomByID(c.Request.Context(), projectID, roomID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve room")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// UpdateRoom godoc
// @Summary Update room
// @Description Updates an existing room. Renaming a room updates the project's room name list.
// @Tags rooms
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param room_id path string true "Room ID"
// @Param room body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/rooms/{room_id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	projectID := c.Param("project_id")
	roomID := c.Param("room_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), projectID, roomID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update room")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// DeleteRoom godoc
// @Summary Delete room
// @Description Removes a room and unregisters its name from the project.
// @Tags rooms
// @Produce json
// @Param project_id path string true "Project ID"
// @Param room_id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{project_id}/rooms/{room_id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	projectID := c.Param("project_id")
	roomID := c.Param("room_id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), projectID, roomID, userID); err != nil {
		respondWithError(c, err, "Failed to delete room")
		return
	}
	c.Status(http.StatusNoContent)
}
