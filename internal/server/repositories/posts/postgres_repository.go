package posts

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

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) error {

	query :=
		`INSERT INTO posts (uid, content, privacy, num_likes, num_comments, num_shares)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.UID, post.Content, post.Privacy, post.NumLikes, post.NumComments, post.NumShares).Scan(&post.ID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByUID(ctx context.Context, postUID, userUID string) (*models.Post, error) {
	query :=
		`SELECT p.id, p.uid, p.content, p.privacy, p.num_likes, p.num_comments, p.num_shares, p.updated_at, p.created_at
		 FROM posts p
		 JOIN user_posts up ON up.post_uid = p.uid
		 WHERE p.uid = $1 AND up.user_uid = $2
		 `

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, postUID, userUID).Scan(
		&post.ID, &post.UID, &post.Content, &post.Privacy,
		&post.NumLikes, &post.NumComments, &post.NumShares,
		&post.UpdatedAt, &post.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, userUID string) ([]models.Post, error) {
	query :=
		`SELECT p.id, p.uid, p.content, p.privacy, p.num_likes, p.num_comments, p.num_shares, p.updated_at, p.created_at
		 FROM posts p
		 JOIN user_posts up ON up.post_uid = p.uid
		 WHERE up.user_uid = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.UID, &post.Content, &post.Privacy,
			&post.NumLikes, &post.NumComments, &post.NumShares,
			&post.UpdatedAt, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, post *models.Post, userUID string) (int64, error) {
	query :=
		`UPDATE posts p
		 SET content = $1, privacy = $2, num_likes = $3, num_comments = $4, num_shares = $5, updated_at = now()
		 FROM user_posts up
		 WHERE p.uid = $6 AND up.post_uid = p.uid AND up.user_uid = $7
		 `

	res, err := r.db.ExecContext(ctx, query,
		post.Content, post.Privacy, post.NumLikes, post.NumComments, post.NumShares,
		post.UID, userUID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return res.RowsAffected()
}

func (r *PostgresRepository) Delete(ctx context.Context, postUID string) (int64, error) {
	query := `DELETE FROM posts WHERE uid = $1`

	res, err := r.db.ExecContext(ctx, query, postUID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return res.RowsAffected()
}
