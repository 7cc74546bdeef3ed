package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okatkov/lookbook/internal/dbx"
	"github.com/okatkov/lookbook/internal/server/models"
	"github.com/okatkov/lookbook/internal/server/repositories/repomanager"
)

// PostService implements the owner-scoped post operations. Creation writes
// the post row and its user_posts association in one transaction, so a
// failed link rolls the post row back instead of leaving it orphaned.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m}
}

// Create assigns a fresh uid, inserts the post, and links it to its owner.
// Returns the new post uid.
func (s *PostService) Create(ctx context.Context, ownerUID string, post *models.Post) (string, error) {
	u, err := newEntityUID()
	if err != nil {
		return "", err
	}
	post.UID = u

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Posts(tx).Create(ctx, post); err != nil {
			return err
		}
		return s.repomanager.Associations(tx).LinkUserPost(ctx, ownerUID, post.UID)
	})
	if err != nil {
		return "", fmt.Errorf("error creating post: %w", err)
	}

	return post.UID, nil
}

// Get returns the post only if it is owned by ownerUID; a post that does
// not exist and a post owned by someone else are both ErrorNotFound.
func (s *PostService) Get(ctx context.Context, ownerUID, postUID string) (*models.Post, error) {
	return s.repomanager.Posts(s.db).GetByUID(ctx, postUID, ownerUID)
}

func (s *PostService) List(ctx context.Context, ownerUID string) ([]models.Post, error) {
	return s.repomanager.Posts(s.db).ListByOwner(ctx, ownerUID)
}

// Update reports the number of rows changed; zero means not found or not
// owned, which callers must treat identically.
func (s *PostService) Update(ctx context.Context, ownerUID string, post *models.Post) (int64, error) {
	return s.repomanager.Posts(s.db).Update(ctx, post, ownerUID)
}

// Delete removes the owning association and the post row in one
// transaction. The association delete doubles as the ownership check:
// when it removes nothing, the post row is left untouched.
func (s *PostService) Delete(ctx context.Context, ownerUID, postUID string) (int64, error) {
	var affected int64

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		removed, err := s.repomanager.Associations(tx).UnlinkUserPost(ctx, ownerUID, postUID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return nil
		}
		affected, err = s.repomanager.Posts(tx).Delete(ctx, postUID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("error deleting post: %w", err)
	}

	return affected, nil
}
