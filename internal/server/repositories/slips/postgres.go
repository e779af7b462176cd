// Package slips provides the PostgreSQL-backed repository for salary
// slips. Slips are insert-only; there is no update or delete path.
package slips

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anshumat/paystream/internal/common"
	"github.com/anshumat/paystream/internal/dbx"
	"github.com/anshumat/paystream/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create stores the slip as-is. Duplicate employee/period combinations are
// permitted; the store does not deduplicate.
func (r *PostgresRepository) Create(ctx context.Context, slip *models.SalarySlip) (*models.SalarySlip, error) {

	query :=
		`INSERT INTO salary_slips (employee_id, amount, month, year)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		slip.EmployeeID, slip.Amount, slip.Month, slip.Year).Scan(&slip.ID, &slip.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return slip, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.SalarySlip, error) {
	query :=
		`SELECT id, employee_id, amount, month, year, created_at FROM salary_slips
		 WHERE id = $1
		 `

	slip := &models.SalarySlip{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&slip.ID, &slip.EmployeeID, &slip.Amount, &slip.Month, &slip.Year, &slip.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return slip, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.SalarySlip, error) {
	query :=
		`SELECT id, employee_id, amount, month, year, created_at FROM salary_slips
		 `
	return r.list(ctx, query)
}

func (r *PostgresRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*models.SalarySlip, error) {
	query :=
		`SELECT id, employee_id, amount, month, year, created_at FROM salary_slips
		 WHERE employee_id = $1
		 `
	return r.list(ctx, query, employeeID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.SalarySlip, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.SalarySlip
	for rows.Next() {
		var s models.SalarySlip
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Amount, &s.Month, &s.Year, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &s)
	}

	return result, rows.Err()
}

// SumAmounts totals the amount column across all slips. An empty table
// sums to zero rather than failing.
func (r *PostgresRepository) SumAmounts(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM salary_slips`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}
