package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/variohq/reno_backend/internal/apperrors"
	"github.com/variohq/reno_backend/internal/core/domain"
	portsrepo "github.com/variohq/reno_backend/internal/core/ports/repositories"
)

type PgxRoomRepository struct {
	db *pgxpool.Pool
}

func newPgxRoomRepository(db *pgxpool.Pool) portsrepo.RoomRepositoryFacade {
	return &PgxRoomRepository{db: db}
}

// Ensure PgxRoomRepository implements portsrepo.RoomRepositoryFacade
var _ portsrepo.RoomRepositoryFacade = (*PgxRoomRepository)(nil)

const roomSelectColumns = `
	room_id, project_id, name, description, measurements, notes,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanRoom(row pgx.Row) (*domain.Room, error) {
	var room domain.Room
	err := row.Scan(
		&room.RoomID,
		&room.ProjectID,
		&room.Name,
		&room.Description,
		&room.Measurements,
		&room.Notes,
		&room.CreatedAt,
		&room.CreatedBy,
		&room.LastUpdatedAt,
		&room.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan room row: %w", err)
	}
	return &room, nil
}

func (r *PgxRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	query := `
		INSERT INTO rooms (
			room_id, project_id, name, description, measurements, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		room.RoomID,
		room.ProjectID,
		room.Name,
		room.Description,
		room.Measurements,
		room.Notes,
		room.CreatedAt,
		room.CreatedBy,
		room.LastUpdatedAt,
		room.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("room " + room.Name + " already exists in this project")
		}
		return fmt.Errorf("failed to save room: %w", err)
	}
	return nil
}

func (r *PgxRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	query := `SELECT ` + roomSelectColumns + ` FROM rooms WHERE room_id = $1;`
	return scanRoom(r.db.QueryRow(ctx, query, roomID))
}

func (r *PgxRoomRepository) ListRooms(ctx context.Context, projectID string) ([]domain.Room, error) {
	query := `SELECT ` + roomSelectColumns + ` FROM rooms WHERE project_id = $1 ORDER BY name;`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}
	return rooms, nil
}

func (r *PgxRoomRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	query := `
		UPDATE rooms
		SET name = $1, description = $2, measurements = $3, notes = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE room_id = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		room.Name,
		room.Description,
		room.Measurements,
		room.Notes,
		room.LastUpdatedAt,
		room.LastUpdatedBy,
		room.RoomID,
	)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRoomRepository) DeleteRoom(ctx context.Context, roomID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE room_id = $1;`, roomID)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
