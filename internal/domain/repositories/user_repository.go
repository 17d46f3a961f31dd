package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/hitaloss/business/internal/domain/entities"
)

// UserRepository finders return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindAll(ctx context.Context) ([]*entities.User, error)
	FindNewest(ctx context.Context, limit int) ([]*entities.User, error)
	Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
}
