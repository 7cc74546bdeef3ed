package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okatkov/lookbook/internal/common"
	"github.com/okatkov/lookbook/internal/dbx"
	"github.com/okatkov/lookbook/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// assocTable resolves the owner variant into the association table and its
// owner-side column. This is the single point of dispatch; every query
// below is built from its result.
func assocTable(owner models.CommentOwner) (table, ownerCol string) {
	if owner.Kind == models.OwnerLook {
		return "look_comments", "look_uid"
	}
	return "post_comments", "post_uid"
}

func (r *PostgresRepository) Create(ctx context.Context, comment *models.Comment) error {

	query :=
		`INSERT INTO comments (uid, kind, content, num_likes)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		comment.UID, comment.Kind, comment.Content, comment.NumLikes).Scan(&comment.ID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByUID(ctx context.Context, commentUID string, owner models.CommentOwner) (*models.Comment, error) {
	table, ownerCol := assocTable(owner)
	query := fmt.Sprintf(
		`SELECT c.id, c.uid, c.kind, c.content, c.num_likes, c.updated_at, c.created_at
		 FROM comments c
		 JOIN %s a ON a.comment_uid = c.uid
		 WHERE c.uid = $1 AND a.%s = $2
		 `, table, ownerCol)

	comment := &models.Comment{}
	err := r.db.QueryRowContext(ctx, query, commentUID, owner.UID).Scan(
		&comment.ID, &comment.UID, &comment.Kind, &comment.Content,
		&comment.NumLikes, &comment.UpdatedAt, &comment.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, owner models.CommentOwner) ([]models.Comment, error) {
	table, ownerCol := assocTable(owner)
	query := fmt.Sprintf(
		`SELECT c.id, c.uid, c.kind, c.content, c.num_likes, c.updated_at, c.created_at
		 FROM comments c
		 JOIN %s a ON a.comment_uid = c.uid
		 WHERE a.%s = $1
		 `, table, ownerCol)

	rows, err := r.db.QueryContext(ctx, query, owner.UID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Comment
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.UID, &comment.Kind, &comment.Content,
			&comment.NumLikes, &comment.UpdatedAt, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, comment *models.Comment, owner models.CommentOwner) (int64, error) {
	table, ownerCol := assocTable(owner)
	query := fmt.Sprintf(
		`UPDATE comments c
		 SET content = $1, num_likes = $2, updated_at = now()
		 FROM %s a
		 WHERE c.uid = $3 AND a.comment_uid = c.uid AND a.%s = $4
		 `, table, ownerCol)

	res, err := r.db.ExecContext(ctx, query, comment.Content, comment.NumLikes, comment.UID, owner.UID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return res.RowsAffected()
}

func (r *PostgresRepository) Delete(ctx context.Context, commentUID string) (int64, error) {
	query := `DELETE FROM comments WHERE uid = $1`

	res, err := r.db.ExecContext(ctx, query, commentUID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return res.RowsAffected()
}
