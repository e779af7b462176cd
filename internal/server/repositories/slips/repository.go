package slips

import (
	"context"

	"github.com/anshumat/paystream/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, slip *models.SalarySlip) (*models.SalarySlip, error)
	GetByID(ctx context.Context, id string) (*models.SalarySlip, error)
	ListAll(ctx context.Context) ([]*models.SalarySlip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*models.SalarySlip, error)
	SumAmounts(ctx context.Context) (float64, error)
}
