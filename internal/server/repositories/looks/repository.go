package looks

import (
	"context"

	"github.com/okatkov/lookbook/internal/server/models"
)

// Repository persists looks, scoped through user_looks the same way the
// posts repository is scoped through user_posts.
type Repository interface {
	Create(ctx context.Context, look *models.Look) error
	GetByUID(ctx context.Context, lookUID, userUID string) (*models.Look, error)
	ListByOwner(ctx context.Context, userUID string) ([]models.Look, error)
	Update(ctx context.Context, look *models.Look, userUID string) (int64, error)
	Delete(ctx context.Context, lookUID string) (int64, error)
}
