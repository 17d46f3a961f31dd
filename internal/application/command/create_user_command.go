package command

import "github.com/hitaloss/business/internal/application/common"

type CreateUserCommand struct {
	Input `json:"-"`

	Username       *string `json:"username" validate:"required,notblank,max=150,username"`
	Password       *string `json:"password" validate:"required,notblank"`
	FirstName      *string `json:"first_name" validate:"omitempty,max=50"`
	LastName       *string `json:"last_name" validate:"omitempty,max=50"`
	IsSeller       *bool   `json:"is_seller"`
	IdempotencyKey string  `json:"-"`
}

type CreateUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
