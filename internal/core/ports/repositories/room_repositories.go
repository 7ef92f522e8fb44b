package repositories

import (
	"context"

	"github.com/variohq/reno_backend/internal/core/domain"
)

// RoomReader defines read operations for room data
type RoomReader interface {
	// FindRoomByID retrieves a specific room by its ID.
	FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// ListRooms retrieves all rooms of a project, by name.
	ListRooms(ctx context.Context, projectID string) ([]domain.Room, error)
}

// RoomWriter defines write operations for room data
type RoomWriter interface {
	// SaveRoom persists a new room.
	SaveRoom(ctx context.Context, room domain.Room) error

	// UpdateRoom updates an existing room.
	UpdateRoom(ctx context.Context, room domain.Room) error

	// DeleteRoom removes a room.
	DeleteRoom(ctx context.Context, roomID string) error
}

// RoomRepositoryFacade combines all room-related repository interfaces
type RoomRepositoryFacade interface {
	RoomReader
	RoomWriter
}
