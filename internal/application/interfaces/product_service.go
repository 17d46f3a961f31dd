package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/hitaloss/business/internal/application/command"
	"github.com/hitaloss/business/internal/application/query"
)

type ProductService interface {
	CreateProduct(ctx context.Context, createCommand *command.CreateProductCommand) (*command.CreateProductCommandResult, error)
	ListProducts(ctx context.Context) (*query.ProductQueryListResult, error)
	FindProductById(ctx context.Context, id uuid.UUID) (*query.ProductQueryResult, error)
	UpdateProduct(ctx context.Context, updateCommand *command.UpdateProductCommand) (*command.UpdateProductCommandResult, error)
}
