package items

import (
	"context"
	"database/sql"
	"encoding/json"
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

// Image lists persist as a jsonb column, (un)marshalled here so callers
// only ever see []string.
func marshalImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	return json.Marshal(images)
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) error {

	images, err := marshalImages(item.Images)
	if err != nil {
		return fmt.Errorf("encoding images: %w", err)
	}

	query :=
		`INSERT INTO items (uid, title, images)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err = r.db.QueryRowContext(ctx, query, item.UID, item.Title, images).Scan(&item.ID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByUID(ctx context.Context, itemUID, lookUID string) (*models.Item, error) {
	query :=
		`SELECT i.id, i.uid, i.title, i.images, i.updated_at, i.created_at
		 FROM items i
		 JOIN look_items li ON li.item_uid = i.uid
		 WHERE i.uid = $1 AND li.look_uid = $2
		 `

	item := &models.Item{}
	var images []byte
	err := r.db.QueryRowContext(ctx, query, itemUID, lookUID).Scan(
		&item.ID, &item.UID, &item.Title, &images, &item.UpdatedAt, &item.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(images, &item.Images); err != nil {
		return nil, fmt.Errorf("decoding images: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, lookUID string) ([]models.Item, error) {
	query :=
		`SELECT i.id, i.uid, i.title, i.images, i.updated_at, i.created_at
		 FROM items i
		 JOIN look_items li ON li.item_uid = i.uid
		 WHERE li.look_uid = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, lookUID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Item
	for rows.Next() {
		var item models.Item
		var images []byte
		if err := rows.Scan(&item.ID, &item.UID, &item.Title, &images,
			&item.UpdatedAt, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(images, &item.Images); err != nil {
			return nil, fmt.Errorf("decoding images: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, item *models.Item, lookUID string) (int64, error) {
	images, err := marshalImages(item.Images)
	if err != nil {
		return 0, fmt.Errorf("encoding images: %w", err)
	}

	query :=
		`UPDATE items i
		 SET title = $1, images = $2, updated_at = now()
		 FROM look_items li
		 WHERE i.uid = $3 AND li.item_uid = i.uid AND li.look_uid = $4
		 `

	res, err := r.db.ExecContext(ctx, query, item.Title, images, item.UID, lookUID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return res.RowsAffected()
}

func (r *PostgresRepository) Delete(ctx context.Context, itemUID string) (int64, error) {
	query := `DELETE FROM items WHERE uid = $1`

	res, err := r.db.ExecContext(ctx, query, itemUID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return res.RowsAffected()
}
