// Command seed bootstraps the master admin and a demo employee account.
// It is idempotent: accounts that already exist are left untouched. No
// sample slips or expenses are created.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anshumat/paystream/internal/common"
	"github.com/anshumat/paystream/internal/dbx"
	"github.com/anshumat/paystream/internal/server/auth"
	"github.com/anshumat/paystream/internal/server/models"
	"github.com/anshumat/paystream/internal/server/repositories/repomanager"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(stderr)

	dsn := fs.String("d", os.Getenv("DATABASE_DSN"), "database DSN (defaults to DATABASE_DSN)")
	adminEmail := fs.String("admin-email", "hire-me@anshumat.org", "admin account email")
	adminPassword := fs.String("admin-password", "", "admin password (prompted if omitted)")
	employeeEmail := fs.String("employee-email", "employee@anshumat.org", "employee account email")
	employeePassword := fs.String("employee-password", "", "employee password (prompted if omitted)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dsn == "" {
		return errors.New("database DSN is required (set -d or DATABASE_DSN)")
	}

	ctx := context.Background()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	accounts := []struct {
		email    string
		password string
		role     models.Role
	}{
		{*adminEmail, *adminPassword, models.RoleAdmin},
		{*employeeEmail, *employeePassword, models.RoleEmployee},
	}

	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := rm.Users(tx)

		for _, a := range accounts {
			_, err := repo.GetByEmail(ctx, a.email)
			if err == nil {
				fmt.Fprintf(stdout, "%s already exists: %s\n", a.role, a.email)
				continue
			}
			if !errors.Is(err, common.ErrorNotFound) {
				return err
			}

			password := a.password
			if password == "" {
				fmt.Fprintf(stdout, "Password for %s: ", a.email)
				password, err = readPassword(stdin)
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				fmt.Fprintln(stdout)
			}
			if strings.TrimSpace(password) == "" {
				return fmt.Errorf("password for %s cannot be empty", a.email)
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}

			if _, err := repo.Create(ctx, &models.User{Email: a.email, HashedPassword: hash, Role: a.role}); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Created %s: %s\n", a.role, a.email)
		}

		return nil
	})
}

// readPassword reads without echo when stdin is a terminal, and falls back
// to a plain line read otherwise (pipes, tests).
func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		return string(b), err
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
