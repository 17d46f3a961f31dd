package command

import (
	"github.com/hitaloss/business/internal/application/common"
	"github.com/hitaloss/business/internal/domain/entities"
)

type CreateProductCommand struct {
	Input `json:"-"`

	Actor          *entities.User `json:"-"`
	Description    *string        `json:"description" validate:"required,notblank"`
	Price          *float64       `json:"price" validate:"required,gte=0,money"`
	Quantity       *int           `json:"quantity" validate:"required,gte=0,lte=2147483647"`
	IdempotencyKey string         `json:"-"`
}

type CreateProductCommandResult struct {
	Result *common.ProductResult `json:"result"`
}
