package items

import (
	"context"

	"github.com/okatkov/lookbook/internal/server/models"
)

// Repository persists items. Items are owned by looks, so all scoped
// operations chain through the look_items association table on the
// caller-supplied look uid.
type Repository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByUID(ctx context.Context, itemUID, lookUID string) (*models.Item, error)
	ListByOwner(ctx context.Context, lookUID string) ([]models.Item, error)
	Update(ctx context.Context, item *models.Item, lookUID string) (int64, error)
	Delete(ctx context.Context, itemUID string) (int64, error)
}
