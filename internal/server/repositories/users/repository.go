package users

import (
	"context"

	"github.com/okatkov/lookbook/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	GetUIDByAPIKey(ctx context.Context, apiKey string) (string, error)
}
