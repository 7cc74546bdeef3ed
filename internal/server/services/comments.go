package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okatkov/lookbook/internal/dbx"
	"github.com/okatkov/lookbook/internal/server/models"
	"github.com/okatkov/lookbook/internal/server/repositories/repomanager"
)

// CommentService manages comments on posts and looks. Every operation
// carries a CommentOwner variant that the repositories resolve into the
// post_comments or look_comments table.
type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager) *CommentService {
	return &CommentService{db: db, repomanager: m}
}

func (s *CommentService) Create(ctx context.Context, owner models.CommentOwner, comment *models.Comment) (string, error) {
	u, err := newEntityUID()
	if err != nil {
		return "", err
	}
	comment.UID = u

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Comments(tx).Create(ctx, comment); err != nil {
			return err
		}
		return s.repomanager.Associations(tx).LinkComment(ctx, owner, comment.UID)
	})
	if err != nil {
		return "", fmt.Errorf("error creating comment: %w", err)
	}

	return comment.UID, nil
}

func (s *CommentService) Get(ctx context.Context, owner models.CommentOwner, commentUID string) (*models.Comment, error) {
	return s.repomanager.Comments(s.db).GetByUID(ctx, commentUID, owner)
}

func (s *CommentService) List(ctx context.Context, owner models.CommentOwner) ([]models.Comment, error) {
	return s.repomanager.Comments(s.db).ListByOwner(ctx, owner)
}

func (s *CommentService) Update(ctx context.Context, owner models.CommentOwner, comment *models.Comment) (int64, error) {
	return s.repomanager.Comments(s.db).Update(ctx, comment, owner)
}

func (s *CommentService) Delete(ctx context.Context, owner models.CommentOwner, commentUID string) (int64, error) {
	var affected int64

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		removed, err := s.repomanager.Associations(tx).UnlinkComment(ctx, owner, commentUID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return nil
		}
		affected, err = s.repomanager.Comments(tx).Delete(ctx, commentUID)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("error deleting comment: %w", err)
	}

	return affected, nil
}
