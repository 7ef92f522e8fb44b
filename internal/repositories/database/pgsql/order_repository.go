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

type PgxOrderRepository struct {
	db *pgxpool.Pool
}

func newPgxOrderRepository(db *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{db: db}
}

// Ensure PgxOrderRepository implements portsrepo.OrderRepositoryFacade
var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

const orderSelectColumns = `
	id, project_id, order_ref, vendor, order_date, total_amount,
	is_emi, emi_months, emi_per_month, emi_schedule,
	amount_paid, balance, status, items, notes,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanOrder(row pgx.Row) (*models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.ID,
		&m.ProjectID,
		&m.OrderID,
		&m.Vendor,
		&m.OrderDate,
		&m.TotalAmount,
		&m.IsEMI,
		&m.EMIMonths,
		&m.EMIPerMonth,
		&m.EMISchedule,
		&m.AmountPaid,
		&m.Balance,
		&m.Status,
		&m.Items,
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
		return nil, fmt.Errorf("failed to scan order row: %w", err)
	}
	return &m, nil
}

func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	m, err := mapping.ToModelOrder(order)
	if err != nil {
		return fmt.Errorf("failed to serialize order: %w", err)
	}
	query := `
		INSERT INTO orders (
			id, project_id, order_ref, vendor, order_date, total_amount,
			is_emi, emi_months, emi_per_month, emi_schedule,
			amount_paid, balance, status, items, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err = r.db.Exec(ctx, query,
		m.ID, m.ProjectID, m.OrderID, m.Vendor, m.OrderDate, m.TotalAmount,
		m.IsEMI, m.EMIMonths, m.EMIPerMonth, m.EMISchedule,
		m.AmountPaid, m.Balance, m.Status, m.Items, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("order ID " + order.ID + " already exists")
		}
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderSelectColumns + ` FROM orders WHERE id = $1;`
	m, err := scanOrder(r.db.QueryRow(ctx, query, orderID))
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainOrder(*m)
	return &d, nil
}

func (r *PgxOrderRepository) ListOrders(ctx context.Context, projectID string) ([]domain.Order, error) {
	query := `SELECT ` + orderSelectColumns + ` FROM orders WHERE project_id = $1 ORDER BY order_date DESC, id DESC;`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var ms []models.Order
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return mapping.ToDomainOrderSlice(ms), nil
}

func (r *PgxOrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	m, err := mapping.ToModelOrder(order)
	if err != nil {
		return fmt.Errorf("failed to serialize order: %w", err)
	}
	query := `
		UPDATE orders
		SET order_ref = $1, vendor = $2, order_date = $3, total_amount = $4,
			is_emi = $5, emi_months = $6, emi_per_month = $7, emi_schedule = $8,
			amount_paid = $9, balance = $10, status = $11, items = $12, notes = $13,
			last_updated_at = $14, last_updated_by = $15
		WHERE id = $16;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.OrderID, m.Vendor, m.OrderDate, m.TotalAmount,
		m.IsEMI, m.EMIMonths, m.EMIPerMonth, m.EMISchedule,
		m.AmountPaid, m.Balance, m.Status, m.Items, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1;`, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
