// Package services contains server-side business logic. This file
// implements UserService: signup, login, and resolving a bearer token back
// to a live account.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/anshumat/paystream/internal/common"
	"github.com/anshumat/paystream/internal/server/auth"
	"github.com/anshumat/paystream/internal/server/config"
	"github.com/anshumat/paystream/internal/server/models"
	"github.com/anshumat/paystream/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations.
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Signup creates a new account. The role string defaults to employee and
// must belong to the closed role set. A duplicate email surfaces as
// common.ErrorAlreadyExists, backed by the store's unique index rather
// than a racy pre-check.
func (s *UserService) Signup(ctx context.Context, email, password, role string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorInvalidArgument)
	}

	parsedRole, err := models.ParseRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Email: email, HashedPassword: hash, Role: parsedRole}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns a signed access
// token together with the account. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.HashedPassword) {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.Email, user.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}

// Authenticate resolves a bearer token to a live account. The identity is
// re-resolved against the store on every call, so an account deleted after
// token issuance is rejected even while its token is formally valid.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	email, _, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// ListUsers returns every account; the admin-only gate sits in the
// transport layer. Hashes stay on the model but are never serialized.
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	repo := s.repomanager.Users(s.db)
	result, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return result, nil
}
