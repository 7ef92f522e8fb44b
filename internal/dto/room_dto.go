package dto

import (
	"github.com/variohq/reno_backend/internal/core/domain"
)

// --- Room DTOs ---

// RoomMeasurementsDTO holds optional room dimensions in feet.
type RoomMeasurementsDTO struct {
	Length float64 `json:"length" binding:"omitempty,gt=0"`
	Width  float64 `json:"width" binding:"omitempty,gt=0"`
	Height float64 `json:"height" binding:"omitempty,gt=0"`
	Area   float64 `json:"area" binding:"omitempty,gt=0"`
}

// CreateRoomRequest defines data for creating a new room.
type CreateRoomRequest struct {
	Name         string               `json:"name" binding:"required"`
	Description  string               `json:"description"`
	Measurements *RoomMeasurementsDTO `json:"measurements"`
	Notes        string               `json:"notes"`
}

// UpdateRoomRequest defines the data allowed for updating a room.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateRoomRequest struct {
	Name         *string              `json:"name"`
	Description  *string              `json:"description"`
	Measurements *RoomMeasurementsDTO `json:"measurements"`
	Notes        *string              `json:"notes"`
}

// RoomResponse defines data returned for a room.
type RoomResponse struct {
	RoomID       string               `json:"roomID"`
	ProjectID    string               `json:"projectID"`
	Name         string               `json:"name"`
	Description  string               `json:"description,omitempty"`
	Measurements *RoomMeasurementsDTO `json:"measurements,omitempty"`
	Notes        string               `json:"notes,omitempty"`
}

// ToRoomResponse converts domain.Room to DTO.
func ToRoomResponse(r *domain.Room) RoomResponse {
	resp := RoomResponse{
		RoomID:      r.RoomID,
		ProjectID:   r.ProjectID,
		Name:        r.Name,
		Description: r.Description,
		Notes:       r.Notes,
	}
	if r.Measurements != nil {
		resp.Measurements = &RoomMeasurementsDTO{
			Length: r.Measurements.Length,
			Width:  r.Measurements.Width,
			Height: r.Measurements.Height,
			Area:   r.Measurements.Area,
		}
	}
	return resp
}

// ListRoomsResponse wraps a list of rooms.
type ListRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// ToListRoomsResponse converts a slice of domain.Room to DTO.
func ToListRoomsResponse(rs []domain.Room) ListRoomsResponse {
	list := make([]RoomResponse, len(rs))
	for i, r := range rs {
		list[i] = ToRoomResponse(&r)
	}
	return ListRoomsResponse{Rooms: list}
}
