package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okatkov/lookbook/internal/dbx"
	"github.com/okatkov/lookbook/internal/server/models"
	"github.com/okatkov/lookbook/internal/server/repositories/repomanager"
)

// LookService mirrors PostService for looks: create links through
// user_looks, everything else is scoped by the same join.
type LookService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewLookService(db *sql.DB, m repomanager.RepositoryManager) *LookService {
	return &LookService{db: db, repomanager: m}
}

func (s *LookService) Create(ctx context.Context, ownerUID string, look *models.Look) (string, error) {
	u, err := newEntityUID()
	if err != nil {
		return "", err
	}
	look.UID = u

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Looks(tx).Create(ctx, look); err != nil {
			return err
		}
		return s.repomanager.Associations(tx).LinkUserLook(ctx, ownerUID, look.UID)
	})
	if err != nil {
		return "", fmt.Errorf("error creating look: %w", err)
	}

	return look.UID, nil
}

func (s *LookService) Get(ctx context.Context, ownerUID, lookUID string) (*models.Look, error) {
	return s.repomanager.Looks(s.db).GetByUID(ctx, lookUID, ownerUID)
}

func (s *LookService) List(ctx context.Context, ownerUID string) ([]models.Look, error) {
	return s.repomanager.Looks(s.db).ListByOwner(ctx, ownerUID)
}

func (s *LookService) Update(ctx context.Context, ownerUID string, look *models.Look) (int64, error) {
	return s.repomanager.Looks(s.db).Update(ctx, look, ownerUID)
}

func (s *LookService) Delete(ctx context.Context, ownerUID, lookUID string) (int64, error) {
	var affected int64

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		removed, err := s.repomanager.Associations(tx).UnlinkUserLook(ctx, ownerUID, lookUID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return nil
		}
		affected, err = s.repomanager.Looks(tx).Delete(ctx, lookUID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("error deleting look: %w", err)
	}

	return affected, nil
}
