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

// roomService implements the RoomSvcFacade. Room writes also maintain the
// project's room-name list, which the room spend rollup folds over.
type roomService struct {
	BaseService
	roomRepo    portsrepo.RoomRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewRoomService creates a new room service.
func NewRoomService(roomRepo portsrepo.RoomRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade, opts ...ServiceOption) portssvc.RoomSvcFacade {
	svc := &roomService{
		roomRepo:    roomRepo,
		projectRepo: projectRepo,
	}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

var _ portssvc.RoomSvcFacade = (*roomService)(nil)

func toDomainMeasurements(m *dto.RoomMeasurementsDTO) *domain.RoomMeasurements {
	if m == nil {
		return nil
	}
	return &domain.RoomMeasurements{
		Length: m.Length,
		Width:  m.Width,
		Height: m.Height,
		Area:   m.Area,
	}
}

// syncProjectRoomNames rewrites the project's room-name list after a room
// write. oldName is empty on create; newName is empty on delete.
func (s *roomService) syncProjectRoomNames(ctx context.Context, projectID, oldName, newName, requestingUserID string) error {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(project.Rooms)+1)
	seen := false
	for _, name := range project.Rooms {
		switch name {
		case oldName:
			if newName != "" && !seen {
				names = append(names, newName)
				seen = true
			}
		case newName:
			if !seen {
				names = append(names, name)
				seen = true
			}
		default:
			names = append(names, name)
		}
	}
	if newName != "" && !seen {
		names = append(names, newName)
	}

	project.Rooms = names
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = requestingUserID
	return s.projectRepo.UpdateProject(ctx, *project)
}

func (s *roomService) CreateRoom(ctx context.Context, projectID string, req dto.CreateRoomRequest, requestingUserID string) (*domain.Room, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return nil, err
	}

	now := time.Now()
	room := domain.Room{
		RoomID:       uuid.NewString(),
		ProjectID:    projectID,
		Name:         req.Name,
		Description:  req.Description,
		Measurements: toDomainMeasurements(req.Measurements),
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.roomRepo.SaveRoom(ctx, room); err != nil {
		s.LogError(ctx, err, "Failed to save room", slog.String("project_id", projectID))
		return nil, err
	}
	if err := s.syncProjectRoomNames(ctx, projectID, "", room.Name, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to register room name on project",
			slog.String("project_id", projectID),
			slog.String("room_name", room.Name))
		return nil, err
	}
	return &room, nil
}

// findProjectRoom fetches a room and verifies it belongs to the project in
// the request path. A mismatch reads as not found.
func (s *roomService) findProjectRoom(ctx context.Context, projectID, roomID string) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.ProjectID != projectID {
		return nil, apperrors.ErrNotFound
	}
	return room, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, projectID, roomID, requestingUserID string) (*domain.Room, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.findProjectRoom(ctx, projectID, roomID)
}

func (s *roomService) ListRooms(ctx context.Context, projectID, requestingUserID string) ([]domain.Room, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.roomRepo.ListRooms(ctx, projectID)
}

func (s *roomService) UpdateRoom(ctx context.Context, projectID, roomID string, req dto.UpdateRoomRequest, requestingUserID string) (*domain.Room, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return nil, err
	}

	room, err := s.findProjectRoom(ctx, projectID, roomID)
	if err != nil {
		return nil, err
	}

	oldName := room.Name
	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Measurements != nil {
		room.Measurements = toDomainMeasurements(req.Measurements)
	}
	if req.Notes != nil {
		room.Notes = *req.Notes
	}
	room.LastUpdatedAt = time.Now()
	room.LastUpdatedBy = requestingUserID

	if err := s.roomRepo.UpdateRoom(ctx, *room); err != nil {
		s.LogError(ctx, err, "Failed to update room", slog.String("room_id", roomID))
		return nil, err
	}
	if room.Name != oldName {
		if err := s.syncProjectRoomNames(ctx, projectID, oldName, room.Name, requestingUserID); err != nil {
			s.LogError(ctx, err, "Failed to rename room on project",
				slog.String("project_id", projectID),
				slog.String("room_name", room.Name))
			return nil, err
		}
	}
	return room, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, projectID, roomID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return err
	}

	room, err := s.findProjectRoom(ctx, projectID, roomID)
	if err != nil {
		return err
	}
	if err := s.roomRepo.DeleteRoom(ctx, roomID); err != nil {
		return err
	}
	if err := s.syncProjectRoomNames(ctx, projectID, room.Name, "", requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to unregister room name from project",
			slog.String("project_id", projectID),
			slog.String("room_name", room.Name))
		return err
	}
	return nil
}
