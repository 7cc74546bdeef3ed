package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/okatkov/lookbook/internal/common"
	"github.com/okatkov/lookbook/internal/server/repositories/repomanager"
)

// AuthService resolves an inbound API key to the owning user's opaque uid.
//
// An empty key is a missing credential, an unknown key an invalid one;
// otherwise the key resolves in a single lookup. Keys do not expire and
// are never rotated, so a key stays valid until the user row changes.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager) *AuthService {
	return &AuthService{db: db, repomanager: m}
}

func (s *AuthService) Authenticate(ctx context.Context, apiKey string) (string, error) {
	if apiKey == "" {
		return "", common.ErrMissingToken
	}

	userUID, err := s.repomanager.Users(s.db).GetUIDByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidToken
		}
		return "", common.ErrorInternal
	}

	return userUID, nil
}
