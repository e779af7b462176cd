package expenses

import (
	"context"

	"github.com/anshumat/paystream/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	ListAll(ctx context.Context) ([]*models.Expense, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*models.Expense, error)
	UpdateStatus(ctx context.Context, id string, status models.ExpenseStatus) error
	CountByStatus(ctx context.Context, status models.ExpenseStatus) (int64, error)
}
