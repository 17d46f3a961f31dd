package interfaces

import (
	"context"

	"github.com/hitaloss/business/internal/application/command"
	"github.com/hitaloss/business/internal/domain/entities"
)

type AuthService interface {
	LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	// Authenticate resolves a token key to its active user.
	Authenticate(ctx context.Context, key string) (*entities.User, error)
}
