package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/hitaloss/business/internal/domain/entities"
)

type TokenRepository interface {
	Create(ctx context.Context, token *entities.Token) error
	FindByKey(ctx context.Context, key string) (*entities.Token, error)
	FindByUserId(ctx context.Context, userID uuid.UUID) (*entities.Token, error)
	Delete(ctx context.Context, key string) error
}
