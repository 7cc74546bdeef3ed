package comments

import (
	"context"

	"github.com/okatkov/lookbook/internal/server/models"
)

// Repository persists comments. A comment belongs to either a post or a
// look; the CommentOwner variant is resolved here into the concrete
// association table (post_comments or look_comments) before any SQL runs.
type Repository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByUID(ctx context.Context, commentUID string, owner models.CommentOwner) (*models.Comment, error)
	ListByOwner(ctx context.Context, owner models.CommentOwner) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment, owner models.CommentOwner) (int64, error)
	Delete(ctx context.Context, commentUID string) (int64, error)
}
