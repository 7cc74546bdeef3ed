// Package services contains the server-side business logic: registration,
// login, token authentication, and the owner-scoped CRUD operations for
// posts, looks, items, and comments. Multi-statement writes run inside a
// single transaction via dbx.WithTx.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okatkov/lookbook/internal/common"
	"github.com/okatkov/lookbook/internal/passhash"
	"github.com/okatkov/lookbook/internal/server/models"
	"github.com/okatkov/lookbook/internal/server/repositories/repomanager"
	"github.com/okatkov/lookbook/internal/uid"
)

// statusActive is the status flag assigned to newly registered users.
const statusActive = 1

// UserService handles account registration and credential checks.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register creates a new account. The email must be fresh; a duplicate
// yields common.ErrDuplicateEmail. The API key is minted here and never
// rotated afterwards.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := passhash.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	userUID, err := uid.New()
	if err != nil {
		return nil, fmt.Errorf("generating user uid: %w", err)
	}
	apiKey, err := uid.New()
	if err != nil {
		return nil, fmt.Errorf("generating api key: %w", err)
	}

	user := &models.User{
		UID:          userUID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		APIKey:       apiKey,
		Status:       statusActive,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return u, nil
}

// Login verifies email and password and returns the matching user.
// A missing account and a wrong password are both ErrBadCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrBadCredentials
		}
		return nil, common.ErrorInternal
	}

	if !passhash.Verify(user.PasswordHash, password) {
		return nil, common.ErrBadCredentials
	}

	return user, nil
}
