package interfaces

import (
	"context"

	"github.com/hitaloss/business/internal/application/command"
	"github.com/hitaloss/business/internal/application/query"
)

type UserService interface {
	CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
	CreateSuperuser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
	ListUsers(ctx context.Context) (*query.UserQueryListResult, error)
	ListNewestUsers(ctx context.Context, limit int) (*query.UserQueryListResult, error)
	UpdateUser(ctx context.Context, updateCommand *command.UpdateUserCommand) (*command.UpdateUserCommandResult, error)
	ManageUser(ctx context.Context, manageCommand *command.ManageUserCommand) (*command.ManageUserCommandResult, error)
}
