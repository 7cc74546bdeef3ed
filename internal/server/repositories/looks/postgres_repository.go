package looks

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

func (r *PostgresRepository) Create(ctx context.Context, look *models.Look) error {

	query :=
		`INSERT INTO looks (uid, title, privacy, num_items, num_likes, num_comments, num_shares)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		look.UID, look.Title, look.Privacy, look.NumItems,
		look.NumLikes, look.NumComments, look.NumShares).Scan(&look.ID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByUID(ctx context.Context, lookUID, userUID string) (*models.Look, error) {
	query :=
		`SELECT l.id, l.uid, l.title, l.privacy, l.num_items, l.num_likes, l.num_comments, l.num_shares, l.updated_at, l.created_at
		 FROM looks l
		 JOIN user_looks ul ON ul.look_uid = l.uid
		 WHERE l.uid = $1 AND ul.user_uid = $2
		 `

	look := &models.Look{}
	err := r.db.QueryRowContext(ctx, query, lookUID, userUID).Scan(
		&look.ID, &look.UID, &look.Title, &look.Privacy, &look.NumItems,
		&look.NumLikes, &look.NumComments, &look.NumShares,
		&look.UpdatedAt, &look.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return look, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, userUID string) ([]models.Look, error) {
	query :=
		`SELECT l.id, l.uid, l.title, l.privacy, l.num_items, l.num_likes, l.num_comments, l.num_shares, l.updated_at, l.created_at
		 FROM looks l
		 JOIN user_looks ul ON ul.look_uid = l.uid
		 WHERE ul.user_uid = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Look
	for rows.Next() {
		var look models.Look
		if err := rows.Scan(&look.ID, &look.UID, &look.Title, &look.Privacy, &look.NumItems,
			&look.NumLikes, &look.NumComments, &look.NumShares,
			&look.UpdatedAt, &look.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, look)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, look *models.Look, userUID string) (int64, error) {
	query :=
		`UPDATE looks l
		 SET title = $1, privacy = $2, num_items = $3, num_likes = $4, num_comments = $5, num_shares = $6, updated_at = now()
		 FROM user_looks ul
		 WHERE l.uid = $7 AND ul.look_uid = l.uid AND ul.user_uid = $8
		 `

	res, err := r.db.ExecContext(ctx, query,
		look.Title, look.Privacy, look.NumItems,
		look.NumLikes, look.NumComments, look.NumShares,
		look.UID, userUID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return res.RowsAffected()
}

func (r *PostgresRepository) Delete(ctx context.Context, lookUID string) (int64, error) {
	query := `DELETE FROM looks WHERE uid = $1`

	res, err := r.db.ExecContext(ctx, query, lookUID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return res.RowsAffected()
}
