package command

import (
	"github.com/google/uuid"

	"github.com/hitaloss/business/internal/application/common"
	"github.com/hitaloss/business/internal/domain/entities"
)

// UpdateUserCommand is a partial update; nil fields are left untouched.
type UpdateUserCommand struct {
	Input `json:"-"`

	Actor     *entities.User `json:"-"`
	Id        uuid.UUID      `json:"-"`
	Username  *string        `json:"username" validate:"omitempty,notblank,max=150,username"`
	Password  *string        `json:"password" validate:"omitempty,notblank"`
	FirstName *string        `json:"first_name" validate:"omitempty,max=50"`
	LastName  *string        `json:"last_name" validate:"omitempty,max=50"`
	IsSeller  *bool          `json:"is_seller"`
}

type UpdateUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
