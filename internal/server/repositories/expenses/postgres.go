// Package expenses provides the PostgreSQL-backed repository for expense
// claims. Claims are never deleted; only the status column is mutated.
package expenses

import (
	"context"
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

// Create persists the claim. Status and submission date come from the
// caller-provided model, which the service layer has already forced to
// Pending/now; the columns also carry matching defaults.
func (r *PostgresRepository) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {

	query :=
		`INSERT INTO expenses (employee_id, description, amount, category, status, date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		expense.EmployeeID, expense.Description, expense.Amount, expense.Category,
		string(expense.Status), expense.Date).Scan(&expense.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return expense, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Expense, error) {
	query :=
		`SELECT id, employee_id, description, amount, category, status, date, rejection_reason
		 FROM expenses
		 `
	return r.list(ctx, query)
}

func (r *PostgresRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*models.Expense, error) {
	query :=
		`SELECT id, employee_id, description, amount, category, status, date, rejection_reason
		 FROM expenses
		 WHERE employee_id = $1
		 `
	return r.list(ctx, query, employeeID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Description, &e.Amount, &e.Category,
			&e.Status, &e.Date, &e.RejectionReason); err != nil {
			return nil, err
		}
		result = append(result, &e)
	}

	return result, rows.Err()
}

// UpdateStatus sets the status of one claim. A zero-row update means the
// id matched nothing and yields common.ErrorNotFound.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.ExpenseStatus) error {
	query :=
		`UPDATE expenses SET status = $1
		 WHERE id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) CountByStatus(ctx context.Context, status models.ExpenseStatus) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM expenses WHERE status = $1`, string(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}
