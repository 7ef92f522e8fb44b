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
	"github.com/variohq/reno_backend/internal/models"
	"github.com/variohq/reno_backend/internal/utils/mapping"
)

type PgxTaskRepository struct {
	BaseRepository
}

func newPgxTaskRepository(pool *pgxpool.Pool) portsrepo.TaskRepositoryWithTx {
	return &PgxTaskRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTaskRepository implements portsrepo.TaskRepositoryWithTx
var _ portsrepo.TaskRepositoryWithTx = (*PgxTaskRepository)(nil)

const taskSelectColumns = `
	task_id, project_id, phase, phase_order, title, description, room,
	status, vendor, estimated_cost, actual_cost, start_date, end_date,
	depends_on, notes,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanTask(row pgx.Row) (*models.Task, error) {
	var m models.Task
	err := row.Scan(
		&m.TaskID,
		&m.ProjectID,
		&m.Phase,
		&m.PhaseOrder,
		&m.Title,
		&m.Description,
		&m.Room,
		&m.Status,
		&m.Vendor,
		&m.EstimatedCost,
		&m.ActualCost,
		&m.StartDate,
		&m.EndDate,
		&m.DependsOn,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan task row: %w", err)
	}
	return &m, nil
}

const taskInsertQuery = `
	INSERT INTO tasks (
		task_id, project_id, phase, phase_order, title, description, room,
		status, vendor, estimated_cost, actual_cost, start_date, end_date,
		depends_on, notes,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
`

func taskInsertArgs(m models.Task) []any {
	return []any{
		m.TaskID, m.ProjectID, m.Phase, m.PhaseOrder, m.Title, m.Description, m.Room,
		m.Status, m.Vendor, m.EstimatedCost, m.ActualCost, m.StartDate, m.EndDate,
		m.DependsOn, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	m, err := mapping.ToModelTask(task)
	if err != nil {
		return fmt.Errorf("failed to serialize task: %w", err)
	}
	_, err = r.Pool.Exec(ctx, taskInsertQuery, taskInsertArgs(m)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("task ID " + task.TaskID + " already exists")
		}
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// SaveTasks inserts a batch inside one transaction. Used by the
// default-phase seeding which creates fifteen tasks in one go.
func (r *PgxTaskRepository) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	for _, task := range tasks {
		m, err := mapping.ToModelTask(task)
		if err != nil {
			return fmt.Errorf("failed to serialize task: %w", err)
		}
		batch.Queue(taskInsertQuery, taskInsertArgs(m)...)
	}
	br := tx.SendBatch(ctx, batch)
	for range tasks {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to save task batch: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close task batch: %w", err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `SELECT ` + taskSelectColumns + ` FROM tasks WHERE task_id = $1;`
	m, err := scanTask(r.Pool.QueryRow(ctx, query, taskID))
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTask(*m)
	return &d, nil
}

// ListTasks orders by (phase_order, created_at, task_id) so the phase fold
// sees the same stable order on every recomputation.
func (r *PgxTaskRepository) ListTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	query := `SELECT ` + taskSelectColumns + ` FROM tasks WHERE project_id = $1 ORDER BY phase_order, created_at, task_id;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var ms []models.Task
	for rows.Next() {
		m, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return mapping.ToDomainTaskSlice(ms), nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	m, err := mapping.ToModelTask(task)
	if err != nil {
		return fmt.Errorf("failed to serialize task: %w", err)
	}
	query := `
		UPDATE tasks
		SET phase = $1, phase_order = $2, title = $3, description = $4, room = $5,
			status = $6, vendor = $7, estimated_cost = $8, actual_cost = $9,
			start_date = $10, end_date = $11, depends_on = $12, notes = $13,
			last_updated_at = $14, last_updated_by = $15
		WHERE task_id = $16;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Phase, m.PhaseOrder, m.Title, m.Description, m.Room,
		m.Status, m.Vendor, m.EstimatedCost, m.ActualCost,
		m.StartDate, m.EndDate, m.DependsOn, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.TaskID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM tasks WHERE task_id = $1;`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
