package associations

import (
	"context"

	"github.com/okatkov/lookbook/internal/server/models"
)

// Repository records ownership pairs. An association row is the sole
// source of truth for "who owns what": entity tables carry no foreign key
// back to their owner. Associations are immutable; they are only created
// (when the owned entity is created) or deleted (when it is deleted), and
// both always happen in the same transaction as the entity write.
type Repository interface {
	LinkUserPost(ctx context.Context, userUID, postUID string) error
	UnlinkUserPost(ctx context.Context, userUID, postUID string) (int64, error)

	LinkUserLook(ctx context.Context, userUID, lookUID string) error
	UnlinkUserLook(ctx context.Context, userUID, lookUID string) (int64, error)

	LinkLookItem(ctx context.Context, lookUID, itemUID string) error
	UnlinkLookItem(ctx context.Context, lookUID, itemUID string) (int64, error)

	LinkComment(ctx context.Context, owner models.CommentOwner, commentUID string) error
	UnlinkComment(ctx context.Context, owner models.CommentOwner, commentUID string) (int64, error)
}
