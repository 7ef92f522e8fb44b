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
	"github.com/variohq/reno_backend/internal/utils/pagination"
)

const defaultExpensePageSize = 50

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryWithTx {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryWithTx
var _ portsrepo.ExpenseRepositoryWithTx = (*PgxExpenseRepository)(nil)

const expenseSelectColumns = `
	expense_id, project_id, item, category, room, vendor, quantity,
	unit_price, total, advance_paid, balance, date, status, payment_mode,
	priority, order_id, notes,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.ProjectID,
		&m.Item,
		&m.Category,
		&m.Room,
		&m.Vendor,
		&m.Quantity,
		&m.UnitPrice,
		&m.Total,
		&m.AdvancePaid,
		&m.Balance,
		&m.Date,
		&m.Status,
		&m.PaymentMode,
		&m.Priority,
		&m.OrderID,
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
		return nil, fmt.Errorf("failed to scan expense row: %w", err)
	}
	return &m, nil
}

func (r *PgxExpenseRepository) collectExpenses(rows pgx.Rows) ([]models.Expense, error) {
	defer rows.Close()
	var ms []models.Expense
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return ms, nil
}

func expenseInsertArgs(m models.Expense) []any {
	return []any{
		m.ExpenseID, m.ProjectID, m.Item, m.Category, m.Room, m.Vendor,
		m.Quantity, m.UnitPrice, m.Total, m.AdvancePaid, m.Balance, m.Date,
		m.Status, m.PaymentMode, m.Priority, m.OrderID, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

const expenseInsertQuery = `
	INSERT INTO expenses (
		expense_id, project_id, item, category, room, vendor, quantity,
		unit_price, total, advance_paid, balance, date, status, payment_mode,
		priority, order_id, notes,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
`

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	_, err := r.Pool.Exec(ctx, expenseInsertQuery, expenseInsertArgs(m)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("expense ID " + expense.ExpenseID + " already exists")
		}
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

// SaveExpenses inserts a batch inside one transaction so a failed import
// never leaves a partial batch behind.
func (r *PgxExpenseRepository) SaveExpenses(ctx context.Context, expenses []domain.Expense) error {
	if len(expenses) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	for _, expense := range expenses {
		batch.Queue(expenseInsertQuery, expenseInsertArgs(mapping.ToModelExpense(expense))...)
	}
	br := tx.SendBatch(ctx, batch)
	for range expenses {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to save expense batch: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close expense batch: %w", err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseSelectColumns + ` FROM expenses WHERE expense_id = $1;`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainExpense(*m)
	return &d, nil
}

// ListExpenses pages through a project's expenses newest first, keyset on
// (date, expense_id) so rows inserted mid-scan never shift the page.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, projectID string, filters portsrepo.ExpenseListFilters) ([]domain.Expense, string, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = defaultExpensePageSize
	}

	query := `SELECT ` + expenseSelectColumns + ` FROM expenses WHERE project_id = $1`
	args := []any{projectID}

	addFilter := func(clause string, value any) {
		args = append(args, value)
		query += fmt.Sprintf(" AND "+clause, len(args))
	}
	if filters.Category != "" {
		addFilter("category = $%d", filters.Category)
	}
	if filters.Room != "" {
		addFilter("room = $%d", filters.Room)
	}
	if filters.Status != "" {
		addFilter("status = $%d", string(filters.Status))
	}
	if filters.Priority != "" {
		addFilter("priority = $%d", string(filters.Priority))
	}
	if filters.FromDate != "" {
		addFilter("date >= $%d", filters.FromDate)
	}
	if filters.ToDate != "" {
		addFilter("date <= $%d", filters.ToDate)
	}

	if filters.NextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(filters.NextToken)
		if err != nil || len(fields) != 2 {
			return nil, "", apperrors.NewValidationFailedError("invalid pagination token")
		}
		args = append(args, fields[0], fields[1])
		query += fmt.Sprintf(" AND (date, expense_id) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit+1) // one extra row decides whether a next page exists
	query += fmt.Sprintf(" ORDER BY date DESC, expense_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query expenses: %w", err)
	}
	ms, err := r.collectExpenses(rows)
	if err != nil {
		return nil, "", err
	}

	nextToken := ""
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		nextToken = pagination.EncodeMultiFieldToken(last.Date, last.ExpenseID)
	}
	return mapping.ToDomainExpenseSlice(ms), nextToken, nil
}

func (r *PgxExpenseRepository) ListAllExpenses(ctx context.Context, projectID string) ([]domain.Expense, error) {
	query := `SELECT ` + expenseSelectColumns + ` FROM expenses WHERE project_id = $1 ORDER BY date DESC, expense_id DESC;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	ms, err := r.collectExpenses(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET item = $1, category = $2, room = $3, vendor = $4, quantity = $5,
			unit_price = $6, total = $7, advance_paid = $8, balance = $9,
			date = $10, status = $11, payment_mode = $12, priority = $13,
			order_id = $14, notes = $15, last_updated_at = $16, last_updated_by = $17
		WHERE expense_id = $18;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Item, m.Category, m.Room, m.Vendor, m.Quantity,
		m.UnitPrice, m.Total, m.AdvancePaid, m.Balance,
		m.Date, m.Status, m.PaymentMode, m.Priority,
		m.OrderID, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
		m.ExpenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
