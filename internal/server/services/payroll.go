package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/anshumat/paystream/internal/common"
	"github.com/anshumat/paystream/internal/server/models"
	"github.com/anshumat/paystream/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// PayrollService covers salary slips, expense claims, and admin
// aggregates. The role-scoping rule lives here, not in the handlers: an
// employee's listings are always narrowed to their own records and no
// request parameter can widen that scope.
type PayrollService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPayrollService(db *sql.DB, m repomanager.RepositoryManager) *PayrollService {
	return &PayrollService{db: db, repomanager: m}
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalSalaryPaid float64 `json:"total_salary_paid"`
	PendingExpenses int64   `json:"pending_expenses"`
	TotalUsers      int64   `json:"total_users"`
}

// parseID round-trips an external identifier. Malformed input fails with
// InvalidArgument instead of reaching the store.
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: malformed id %q", common.ErrorInvalidArgument, id)
	}
	return parsed.String(), nil
}

// CreateSlip stores a new slip as-is. The admin gate is enforced by the
// transport layer; duplicates for the same employee/period are allowed.
func (s *PayrollService) CreateSlip(ctx context.Context, employeeID string, amount float64, month string, year int) (*models.SalarySlip, error) {
	if employeeID == "" || month == "" {
		return nil, fmt.Errorf("%w: employee_id and month are required", common.ErrorInvalidArgument)
	}

	slip := &models.SalarySlip{EmployeeID: employeeID, Amount: amount, Month: month, Year: year}
	repo := s.repomanager.Slips(s.db)
	created, err := repo.Create(ctx, slip)
	if err != nil {
		return nil, fmt.Errorf("error creating slip: %w", err)
	}
	return created, nil
}

// ListSlips returns the slips visible to the viewer: all of them for an
// admin, only the viewer's own otherwise.
func (s *PayrollService) ListSlips(ctx context.Context, viewer *models.User) ([]*models.SalarySlip, error) {
	repo := s.repomanager.Slips(s.db)
	if viewer.Role == models.RoleAdmin {
		return repo.ListAll(ctx)
	}
	return repo.ListByEmployee(ctx, viewer.ID)
}

// GetSlip fetches one slip and enforces per-record ownership: admin
// bypasses, an employee must match the slip's employee_id exactly.
func (s *PayrollService) GetSlip(ctx context.Context, viewer *models.User, id string) (*models.SalarySlip, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Slips(s.db)
	slip, err := repo.GetByID(ctx, parsed)
	if err != nil {
		return nil, err
	}

	if viewer.Role != models.RoleAdmin && slip.EmployeeID != viewer.ID {
		return nil, common.ErrorForbidden
	}

	return slip, nil
}

// SubmitExpense files a claim for the owner. Status, submission date, and
// ownership are forced server-side; client-supplied values for these
// fields are ignored.
func (s *PayrollService) SubmitExpense(ctx context.Context, owner *models.User, description string, amount float64, category string) (*models.Expense, error) {
	expense := &models.Expense{
		EmployeeID:  owner.ID,
		Description: description,
		Amount:      amount,
		Category:    category,
		Status:      models.ExpensePending,
		Date:        time.Now().UTC(),
	}

	repo := s.repomanager.Expenses(s.db)
	created, err := repo.Create(ctx, expense)
	if err != nil {
		return nil, fmt.Errorf("error creating expense: %w", err)
	}
	return created, nil
}

// ListExpenses applies the same visibility rule as ListSlips.
func (s *PayrollService) ListExpenses(ctx context.Context, viewer *models.User) ([]*models.Expense, error) {
	repo := s.repomanager.Expenses(s.db)
	if viewer.Role == models.RoleAdmin {
		return repo.ListAll(ctx)
	}
	return repo.ListByEmployee(ctx, viewer.ID)
}

// UpdateExpenseStatus moves a claim to Approved or Rejected. Any other
// status string is rejected, case-sensitively, before the store is
// touched; a well-formed id matching no record yields NotFound.
func (s *PayrollService) UpdateExpenseStatus(ctx context.Context, id string, status string) error {
	newStatus := models.ExpenseStatus(status)
	if !newStatus.Disposition() {
		return fmt.Errorf("%w: invalid status %q", common.ErrorInvalidArgument, status)
	}

	parsed, err := parseID(id)
	if err != nil {
		return err
	}

	repo := s.repomanager.Expenses(s.db)
	return repo.UpdateStatus(ctx, parsed, newStatus)
}

// AggregateStats computes the admin summary. All three figures are
// zero-safe on empty collections.
func (s *PayrollService) AggregateStats(ctx context.Context) (*Stats, error) {
	total, err := s.repomanager.Slips(s.db).SumAmounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error summing slips: %w", err)
	}

	pending, err := s.repomanager.Expenses(s.db).CountByStatus(ctx, models.ExpensePending)
	if err != nil {
		return nil, fmt.Errorf("error counting pending expenses: %w", err)
	}

	userCount, err := s.repomanager.Users(s.db).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}

	return &Stats{TotalSalaryPaid: total, PendingExpenses: pending, TotalUsers: userCount}, nil
}
