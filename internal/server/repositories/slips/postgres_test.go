package slips

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/anshumat/paystream/internal/common"
	"github.com/anshumat/paystream/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_ReturnsStoredFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+salary_slips\s*\(employee_id,\s*amount,\s*month,\s*year\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id,\s*created_at\s*$`

	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs("emp-1", 1000.0, "January", 2025).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("s-1", now))

	got, err := repo.Create(context.Background(), &models.SalarySlip{
		EmployeeID: "emp-1", Amount: 1000, Month: "January", Year: 2025,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "s-1" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected slip: %+v", got)
	}
}

const selectByIDQuery = `(?s)^SELECT\s+id,\s*employee_id,\s*amount,\s*month,\s*year,\s*created_at\s+FROM\s+salary_slips\s+WHERE\s+id\s*=\s*\$1\s*$`

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectByIDQuery).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestListByEmployee_ScansRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*employee_id,\s*amount,\s*month,\s*year,\s*created_at\s+FROM\s+salary_slips\s+WHERE\s+employee_id\s*=\s*\$1\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "employee_id", "amount", "month", "year", "created_at"}).
		AddRow("s-1", "emp-1", 1000.0, "January", 2025, now).
		AddRow("s-2", "emp-1", 1500.0, "February", 2025, now)
	mock.ExpectQuery(q).WithArgs("emp-1").WillReturnRows(rows)

	got, err := repo.ListByEmployee(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("ListByEmployee error: %v", err)
	}
	if len(got) != 2 || got[1].Month != "February" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestSumAmounts(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+COALESCE\(SUM\(amount\),\s*0\)\s+FROM\s+salary_slips\s*$`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(2500.5))

	total, err := repo.SumAmounts(context.Background())
	if err != nil {
		t.Fatalf("SumAmounts error: %v", err)
	}
	if total != 2500.5 {
		t.Fatalf("want 2500.5, got %v", total)
	}
}
