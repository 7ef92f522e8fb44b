package services

import (
	"context"

	"github.com/variohq/reno_backend/internal/core/domain"
	"github.com/variohq/reno_backend/internal/dto"
)

// RoomReaderSvc defines read operations for room data
type RoomReaderSvc interface {
	// GetRoomByID retrieves a single room after authorization.
	GetRoomByID(ctx context.Context, projectID, roomID, requestingUserID string) (*domain.Room, error)

	// ListRooms retrieves all rooms of a project.
	ListRooms(ctx context.Context, projectID, requestingUserID string) ([]domain.Room, error)
}

// RoomWriterSvc defines write operations for room data
type RoomWriterSvc interface {
	// CreateRoom creates a new room and registers its name on the project.
	CreateRoom(ctx context.Context, projectID string, req dto.CreateRoomRequest, requestingUserID string) (*domain.Room, error)

	// UpdateRoom updates an existing room.
	UpdateRoom(ctx context.Context, projectID, roomID string, req dto.UpdateRoomRequest, requestingUserID string) (*domain.Room, error)

	// DeleteRoom removes a room.
	DeleteRoom(ctx context.Context, projectID, roomID, requestingUserID string) error
}

// RoomSvcFacade combines all room-related service interfaces
type RoomSvcFacade interface {
	RoomReaderSvc
	RoomWriterSvc
}
