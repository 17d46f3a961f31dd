package repositories

import (
	"context"

	"github.com/hitaloss/business/internal/domain/entities"
)

type IdempotencyRepository interface {
	Create(ctx context.Context, record *entities.IdempotencyRecord) (*entities.IdempotencyRecord, error)
	FindByKey(ctx context.Context, key string) (*entities.IdempotencyRecord, error)
}
