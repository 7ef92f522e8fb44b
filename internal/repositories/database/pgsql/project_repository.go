package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/variohq/reno_backend/internal/apperrors"
	"github.com/variohq/reno_backend/internal/core/domain"
	portsrepo "github.com/variohq/reno_backend/internal/core/ports/repositories"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryWithTx {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryWithTx
var _ portsrepo.ProjectRepositoryWithTx = (*PgxProjectRepository)(nil)

const projectSelectColumns = `
	p.project_id, p.name, p.description, p.city, p.bhk_type, p.rooms,
	p.budget_min, p.budget_max, p.budget_allocations, p.owner_id,
	p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
`

// scanProject scans a single project row. Rooms and budget_allocations are
// JSONB columns; pgx decodes them straight into the slice fields.
func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ProjectID,
		&p.Name,
		&p.Description,
		&p.City,
		&p.BHKType,
		&p.Rooms,
		&p.BudgetMin,
		&p.BudgetMax,
		&p.BudgetAllocations,
		&p.OwnerID,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan project row", err)
	}
	return &p, nil
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	query := `
		INSERT INTO projects (
			project_id, name, description, city, bhk_type, rooms,
			budget_min, budget_max, budget_allocations, owner_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		project.ProjectID,
		project.Name,
		project.Description,
		project.City,
		project.BHKType,
		project.Rooms,
		project.BudgetMin,
		project.BudgetMax,
		project.BudgetAllocations,
		project.OwnerID,
		project.CreatedAt,
		project.CreatedBy,
		project.LastUpdatedAt,
		project.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("project ID " + project.ProjectID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save project "+project.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectSelectColumns + ` FROM projects p WHERE p.project_id = $1;`
	return scanProject(r.Pool.QueryRow(ctx, query, projectID))
}

func (r *PgxProjectRepository) ListProjectsByUserID(ctx context.Context, userID string) ([]domain.Project, error) {
	query := `
		SELECT ` + projectSelectColumns + `
		FROM projects p
		JOIN project_members pm ON p.project_id = pm.project_id
		WHERE pm.user_id = $1
		ORDER BY p.name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query projects", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating project rows", err)
	}
	return projects, nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	query := `
		UPDATE projects
		SET name = $1, description = $2, city = $3, bhk_type = $4, rooms = $5,
			budget_min = $6, budget_max = $7, budget_allocations = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE project_id = $11;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		project.Name,
		project.Description,
		project.City,
		project.BHKType,
		project.Rooms,
		project.BudgetMin,
		project.BudgetMax,
		project.BudgetAllocations,
		project.LastUpdatedAt,
		project.LastUpdatedBy,
		project.ProjectID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update project "+project.ProjectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	// Scoped records (expenses, orders, tasks, rooms, memberships) go with
	// the project via ON DELETE CASCADE.
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE project_id = $1;`, projectID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete project "+projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProjectRepository) AddMember(ctx context.Context, membership domain.ProjectMember) error {
	query := `
		INSERT INTO project_members (user_id, project_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, project_id) DO UPDATE SET role = EXCLUDED.role;
	` // Upsert: add the member or update their role if they already exist
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.ProjectID,
		membership.Role,
		membership.JoinedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add user "+membership.UserID+" to project "+membership.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) FindMemberRole(ctx context.Context, userID, projectID string) (*domain.ProjectMember, error) {
	query := `
		SELECT pm.user_id, u.name AS user_name, pm.project_id, pm.role, pm.joined_at
		FROM project_members pm
		JOIN users u ON pm.user_id = u.user_id
		WHERE pm.user_id = $1 AND pm.project_id = $2;
	`
	var m domain.ProjectMember
	err := r.Pool.QueryRow(ctx, query, userID, projectID).Scan(
		&m.UserID,
		&m.UserName,
		&m.ProjectID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("project not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find role for user "+userID+" in project "+projectID, err)
	}
	return &m, nil
}

func (r *PgxProjectRepository) ListMembers(ctx context.Context, projectID string) ([]domain.ProjectMember, error) {
	query := `
		SELECT pm.user_id, u.name AS user_name, pm.project_id, pm.role, pm.joined_at
		FROM project_members pm
		JOIN users u ON pm.user_id = u.user_id
		WHERE pm.project_id = $1
		ORDER BY pm.joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query members for project "+projectID, err)
	}
	defer rows.Close()

	var members []domain.ProjectMember
	for rows.Next() {
		var m domain.ProjectMember
		if err := rows.Scan(&m.UserID, &m.UserName, &m.ProjectID, &m.Role, &m.JoinedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan project member row", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating project member rows", err)
	}
	return members, nil
}

func (r *PgxProjectRepository) RemoveMember(ctx context.Context, userID, projectID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM project_members WHERE user_id = $1 AND project_id = $2;`,
		userID, projectID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to remove user "+userID+" from project "+projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProjectRepository) UpdateMemberRole(ctx context.Context, userID, projectID string, role domain.ProjectRole) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE project_members SET role = $3 WHERE user_id = $1 AND project_id = $2;`,
		userID, projectID, role,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update role for user "+userID+" in project "+projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
