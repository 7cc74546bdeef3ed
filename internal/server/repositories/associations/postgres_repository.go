package associations

import (
	"context"
	"fmt"

	"github.com/okatkov/lookbook/internal/dbx"
	"github.com/okatkov/lookbook/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// link inserts one ownership pair. Duplicate pairs and references to
// missing entity rows surface as constraint errors, which the calling
// service treats as overall creation failure (rolling back the entity
// insert with them).
func (r *PostgresRepository) link(ctx context.Context, table, ownerCol, ownedCol, ownerUID, ownedUID string) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`, table, ownerCol, ownedCol)

	if _, err := r.db.ExecContext(ctx, query, ownerUID, ownedUID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// unlink removes one ownership pair and reports the number of rows
// removed. Zero means the pair never existed or is owned by someone else;
// the caller uses that count as its ownership check.
func (r *PostgresRepository) unlink(ctx context.Context, table, ownerCol, ownedCol, ownerUID, ownedUID string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, table, ownerCol, ownedCol)

	res, err := r.db.ExecContext(ctx, query, ownerUID, ownedUID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return res.RowsAffected()
}

func (r *PostgresRepository) LinkUserPost(ctx context.Context, userUID, postUID string) error {
	return r.link(ctx, "user_posts", "user_uid", "post_uid", userUID, postUID)
}

func (r *PostgresRepository) UnlinkUserPost(ctx context.Context, userUID, postUID string) (int64, error) {
	return r.unlink(ctx, "user_posts", "user_uid", "post_uid", userUID, postUID)
}

func (r *PostgresRepository) LinkUserLook(ctx context.Context, userUID, lookUID string) error {
	return r.link(ctx, "user_looks", "user_uid", "look_uid", userUID, lookUID)
}

func (r *PostgresRepository) UnlinkUserLook(ctx context.Context, userUID, lookUID string) (int64, error) {
	return r.unlink(ctx, "user_looks", "user_uid", "look_uid", userUID, lookUID)
}

func (r *PostgresRepository) LinkLookItem(ctx context.Context, lookUID, itemUID string) error {
	return r.link(ctx, "look_items", "look_uid", "item_uid", lookUID, itemUID)
}

func (r *PostgresRepository) UnlinkLookItem(ctx context.Context, lookUID, itemUID string) (int64, error) {
	return r.unlink(ctx, "look_items", "look_uid", "item_uid", lookUID, itemUID)
}

func (r *PostgresRepository) LinkComment(ctx context.Context, owner models.CommentOwner, commentUID string) error {
	if owner.Kind == models.OwnerLook {
		return r.link(ctx, "look_comments", "look_uid", "comment_uid", owner.UID, commentUID)
	}
	return r.link(ctx, "post_comments", "post_uid", "comment_uid", owner.UID, commentUID)
}

func (r *PostgresRepository) UnlinkComment(ctx context.Context, owner models.CommentOwner, commentUID string) (int64, error) {
	if owner.Kind == models.OwnerLook {
		return r.unlink(ctx, "look_comments", "look_uid", "comment_uid", owner.UID, commentUID)
	}
	return r.unlink(ctx, "post_comments", "post_uid", "comment_uid", owner.UID, commentUID)
}
