package services

import (
	"context"
	"database/sql"
	"sync"

	"github.com/anshumat/paystream/internal/common"
	"github.com/anshumat/paystream/internal/dbx"
	expensesrepo "github.com/anshumat/paystream/internal/server/repositories/expenses"
	"github.com/anshumat/paystream/internal/server/repositories/repomanager"
	slipsrepo "github.com/anshumat/paystream/internal/server/repositories/slips"
	usersrepo "github.com/anshumat/paystream/internal/server/repositories/users"

	"github.com/anshumat/paystream/internal/server/models"
	"github.com/google/uuid"
)

// --- in-memory fakes ---

type memUsersRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{byEmail: make(map[string]*models.User)}
}

func (m *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	cp := *u
	cp.ID = uuid.NewString()
	m.byEmail[cp.Email] = &cp
	return &cp, nil
}

func (m *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsersRepo) List(ctx context.Context) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*models.User
	for _, u := range m.byEmail {
		cp := *u
		result = append(result, &cp)
	}
	return result, nil
}

func (m *memUsersRepo) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byEmail)), nil
}

func (m *memUsersRepo) delete(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byEmail, email)
}

type memSlipsRepo struct {
	mu   sync.Mutex
	byID map[string]*models.SalarySlip
}

func newMemSlipsRepo() *memSlipsRepo {
	return &memSlipsRepo{byID: make(map[string]*models.SalarySlip)}
}

func (m *memSlipsRepo) Create(ctx context.Context, s *models.SalarySlip) (*models.SalarySlip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	cp.ID = uuid.NewString()
	m.byID[cp.ID] = &cp
	return &cp, nil
}

func (m *memSlipsRepo) GetByID(ctx context.Context, id string) (*models.SalarySlip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memSlipsRepo) ListAll(ctx context.Context) ([]*models.SalarySlip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*models.SalarySlip
	for _, s := range m.byID {
		cp := *s
		result = append(result, &cp)
	}
	return result, nil
}

func (m *memSlipsRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*models.SalarySlip, error) {
	all, _ := m.ListAll(ctx)
	var result []*models.SalarySlip
	for _, s := range all {
		if s.EmployeeID == employeeID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *memSlipsRepo) SumAmounts(ctx context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total float64
	for _, s := range m.byID {
		total += s.Amount
	}
	return total, nil
}

type memExpensesRepo struct {
	mu   sync.Mutex
	byID map[string]*models.Expense
}

func newMemExpensesRepo() *memExpensesRepo {
	return &memExpensesRepo{byID: make(map[string]*models.Expense)}
}

func (m *memExpensesRepo) Create(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *e
	cp.ID = uuid.NewString()
	m.byID[cp.ID] = &cp
	return &cp, nil
}

func (m *memExpensesRepo) ListAll(ctx context.Context) ([]*models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*models.Expense
	for _, e := range m.byID {
		cp := *e
		result = append(result, &cp)
	}
	return result, nil
}

func (m *memExpensesRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*models.Expense, error) {
	all, _ := m.ListAll(ctx)
	var result []*models.Expense
	for _, e := range all {
		if e.EmployeeID == employeeID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *memExpensesRepo) UpdateStatus(ctx context.Context, id string, status models.ExpenseStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	e.Status = status
	return nil
}

func (m *memExpensesRepo) CountByStatus(ctx context.Context, status models.ExpenseStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, e := range m.byID {
		if e.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeRepoManager struct {
	u *memUsersRepo
	s *memSlipsRepo
	e *memExpensesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newMemUsersRepo(), s: newMemSlipsRepo(), e: newMemExpensesRepo()}
}

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository          { return m.u }
func (m *fakeRepoManager) Slips(db dbx.DBTX) slipsrepo.Repository         { return m.s }
func (m *fakeRepoManager) Expenses(db dbx.DBTX) expensesrepo.Repository   { return m.e }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error   { return nil }
