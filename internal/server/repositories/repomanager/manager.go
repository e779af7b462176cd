package repomanager

import (
	"context"
	"database/sql"

	"github.com/anshumat/paystream/internal/dbx"
	"github.com/anshumat/paystream/internal/server/repositories/expenses"
	"github.com/anshumat/paystream/internal/server/repositories/slips"
	"github.com/anshumat/paystream/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX
// (either the pooled *sql.DB or an open *sql.Tx) and exposes a schema
// migration hook.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Slips(db dbx.DBTX) slips.Repository
	Expenses(db dbx.DBTX) expenses.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
