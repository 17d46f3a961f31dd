package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/hitaloss/business/internal/domain/entities"
)

// ProductRepository loads products with their owning user attached.
type ProductRepository interface {
	Create(ctx context.Context, product *entities.ValidatedProduct) (*entities.Product, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	FindAll(ctx context.Context) ([]*entities.Product, error)
	Update(ctx context.Context, product *entities.ValidatedProduct) (*entities.Product, error)
}
