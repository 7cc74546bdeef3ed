package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okatkov/lookbook/internal/dbx"
	"github.com/okatkov/lookbook/internal/server/models"
	"github.com/okatkov/lookbook/internal/server/repositories/repomanager"
)

// ItemService manages the items of a look. The owning side of every
// predicate is the look uid, not the user: the caller authenticates as a
// user, but items chain through look_items only.
type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewItemService(db *sql.DB, m repomanager.RepositoryManager) *ItemService {
	return &ItemService{db: db, repomanager: m}
}

func (s *ItemService) Create(ctx context.Context, lookUID string, item *models.Item) (string, error) {
	u, err := newEntityUID()
	if err != nil {
		return "", err
	}
	item.UID = u

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Items(tx).Create(ctx, item); err != nil {
			return err
		}
		return s.repomanager.Associations(tx).LinkLookItem(ctx, lookUID, item.UID)
	})
	if err != nil {
		return "", fmt.Errorf("error creating item: %w", err)
	}

	return item.UID, nil
}

func (s *ItemService) Get(ctx context.Context, lookUID, itemUID string) (*models.Item, error) {
	return s.repomanager.Items(s.db).GetByUID(ctx, itemUID, lookUID)
}

func (s *ItemService) List(ctx context.Context, lookUID string) ([]models.Item, error) {
	return s.repomanager.Items(s.db).ListByOwner(ctx, lookUID)
}

func (s *ItemService) Update(ctx context.Context, lookUID string, item *models.Item) (int64, error) {
	return s.repomanager.Items(s.db).Update(ctx, item, lookUID)
}

func (s *ItemService) Delete(ctx context.Context, lookUID, itemUID string) (int64, error) {
	var affected int64

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		removed, err := s.repomanager.Associations(tx).UnlinkLookItem(ctx, lookUID, itemUID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return nil
		}
		affected, err = s.repomanager.Items(tx).Delete(ctx, itemUID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("error deleting item: %w", err)
	}

	return affected, nil
}
