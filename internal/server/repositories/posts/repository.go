package posts

import (
	"context"

	"github.com/okatkov/lookbook/internal/server/models"
)

// Repository persists posts. All read and write operations except Create
// and Delete are scoped through the user_posts association table, so a
// caller can only reach rows it owns. Delete removes the entity row only;
// the owning association row is removed first by the service, inside the
// same transaction.
type Repository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByUID(ctx context.Context, postUID, userUID string) (*models.Post, error)
	ListByOwner(ctx context.Context, userUID string) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post, userUID string) (int64, error)
	Delete(ctx context.Context, postUID string) (int64, error)
}
