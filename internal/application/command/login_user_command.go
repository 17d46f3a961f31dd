package command

import "github.com/hitaloss/business/internal/application/common"

type LoginUserCommand struct {
	Input `json:"-"`

	Username *string `json:"username" validate:"required,notblank"`
	Password *string `json:"password" validate:"required,notblank"`
	ClientIP string  `json:"-"`
}

type LoginUserCommandResult struct {
	Token string             `json:"token"`
	User  *common.UserResult `json:"-"`
}
