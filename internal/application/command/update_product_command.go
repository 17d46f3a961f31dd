package command

import (
	"github.com/google/uuid"

	"github.com/hitaloss/business/internal/application/common"
	"github.com/hitaloss/business/internal/domain/entities"
)

type UpdateProductCommand struct {
	Input `json:"-"`

	Actor       *entities.User `json:"-"`
	Id          uuid.UUID      `json:"-"`
	Description *string        `json:"description" validate:"omitempty,notblank"`
	Price       *float64       `json:"price" validate:"omitempty,gte=0,money"`
	Quantity    *int           `json:"quantity" validate:"omitempty,gte=0,lte=2147483647"`
}

type UpdateProductCommandResult struct {
	Result *common.ProductResult `json:"result"`
}
