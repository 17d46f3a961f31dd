package command

import (
	"github.com/google/uuid"

	"github.com/hitaloss/business/internal/application/common"
	"github.com/hitaloss/business/internal/domain/entities"
)

type ManageUserCommand struct {
	Input `json:"-"`

	Actor    *entities.User `json:"-"`
	Id       uuid.UUID      `json:"-"`
	IsActive *bool          `json:"is_active"`
}

type ManageUserCommandResult struct {
	Result *common.AccountStatusResult `json:"result"`
}
