package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hitaloss/business/internal/application/command"
	"github.com/hitaloss/business/internal/application/interfaces"
	"github.com/hitaloss/business/internal/application/mapper"
	"github.com/hitaloss/business/internal/application/query"
	"github.com/hitaloss/business/internal/application/validation"
	"github.com/hitaloss/business/internal/domain"
	"github.com/hitaloss/business/internal/domain/entities"
	"github.com/hitaloss/business/internal/domain/permissions"
	"github.com/hitaloss/business/internal/domain/repositories"
	"github.com/hitaloss/business/internal/messaging"
)

const usernameTakenMessage = "A user with that username already exists."

type UserService struct {
	userRepo        repositories.UserRepository
	idempotencyRepo repositories.IdempotencyRepository
	publisher       messaging.Publisher
	log             logrus.FieldLogger
}

func NewUserService(
	userRepo repositories.UserRepository,
	idempotencyRepo repositories.IdempotencyRepository,
	publisher messaging.Publisher,
	log logrus.FieldLogger,
) interfaces.UserService {
	return &UserService{
		userRepo:        userRepo,
		idempotencyRepo: idempotencyRepo,
		publisher:       publisher,
		log:             log.WithField("service", "users"),
	}
}

func (s *UserService) CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	return s.createAccount(ctx, createCommand, false)
}

// CreateSuperuser registers an administrator. It is only reachable from the
// command line.
func (s *UserService) CreateSuperuser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	return s.createAccount(ctx, createCommand, true)
}

func (s *UserService) createAccount(ctx context.Context, createCommand *command.CreateUserCommand, superuser bool) (*command.CreateUserCommandResult, error) {
	idempotencyKey := ""
	if createCommand.IdempotencyKey != "" {
		idempotencyKey = "accounts:" + createCommand.IdempotencyKey
	}

	var result command.CreateUserCommandResult
	replayed, err := replayResponse(ctx, s.idempotencyRepo, idempotencyKey, &result)
	if err != nil {
		return nil, err
	}
	if replayed {
		return &result, nil
	}

	if err := validation.Struct(createCommand); err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.FindByUsername(ctx, *createCommand.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, domain.NewValidationError("username", usernameTakenMessage)
	}

	var newUser *entities.User
	if superuser {
		newUser = entities.NewSuperuser(*createCommand.Username, *createCommand.Password, deref(createCommand.FirstName), deref(createCommand.LastName))
	} else {
		newUser = entities.NewUser(*createCommand.Username, *createCommand.Password, deref(createCommand.FirstName), deref(createCommand.LastName), deref(createCommand.IsSeller))
	}
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		if errors.Is(err, domain.ErrIntegrity) {
			return nil, domain.NewValidationError("username", usernameTakenMessage)
		}
		return nil, err
	}

	result = command.CreateUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}

	publish(ctx, s.publisher, s.log, messaging.SubjectAccountCreated, result.Result)
	redacted := *createCommand
	redacted.Password = nil
	storeResponse(ctx, s.idempotencyRepo, s.log, idempotencyKey, redacted, result, http.StatusCreated)

	return &result, nil
}

func (s *UserService) ListUsers(ctx context.Context) (*query.UserQueryListResult, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &query.UserQueryListResult{Result: mapper.NewUserResultsFromEntities(users)}, nil
}

// ListNewestUsers returns the first limit users by date joined.
func (s *UserService) ListNewestUsers(ctx context.Context, limit int) (*query.UserQueryListResult, error) {
	if limit <= 0 {
		return &query.UserQueryListResult{Result: mapper.NewUserResultsFromEntities(nil)}, nil
	}
	users, err := s.userRepo.FindNewest(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &query.UserQueryListResult{Result: mapper.NewUserResultsFromEntities(users)}, nil
}

func (s *UserService) UpdateUser(ctx context.Context, updateCommand *command.UpdateUserCommand) (*command.UpdateUserCommandResult, error) {
	if !permissions.IsAuthenticated(updateCommand.Actor) {
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.findUser(ctx, updateCommand.Id)
	if err != nil {
		return nil, err
	}

	if !permissions.IsAccountOwner(updateCommand.Actor, user) {
		return nil, domain.ErrPermissionDenied
	}

	if err := validation.Struct(updateCommand); err != nil {
		return nil, err
	}

	if updateCommand.Username != nil && *updateCommand.Username != user.Username {
		existingUser, err := s.userRepo.FindByUsername(ctx, *updateCommand.Username)
		if err != nil {
			return nil, err
		}
		if existingUser != nil {
			return nil, domain.NewValidationError("username", usernameTakenMessage)
		}
	}

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}
	if err := validatedUser.UpdateProfile(entities.ProfileChanges{
		Username:  updateCommand.Username,
		FirstName: updateCommand.FirstName,
		LastName:  updateCommand.LastName,
		IsSeller:  updateCommand.IsSeller,
	}); err != nil {
		return nil, err
	}
	if updateCommand.Password != nil {
		if err := validatedUser.SetPassword(*updateCommand.Password); err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}

	updatedUser, err := s.userRepo.Update(ctx, validatedUser)
	if err != nil {
		if errors.Is(err, domain.ErrIntegrity) {
			return nil, domain.NewValidationError("username", usernameTakenMessage)
		}
		return nil, err
	}

	result := command.UpdateUserCommandResult{
		Result: mapper.NewUserResultFromEntity(updatedUser),
	}
	publish(ctx, s.publisher, s.log, messaging.SubjectAccountUpdated, result.Result)

	return &result, nil
}

// ManageUser lets a superuser activate or deactivate any account.
func (s *UserService) ManageUser(ctx context.Context, manageCommand *command.ManageUserCommand) (*command.ManageUserCommandResult, error) {
	if !permissions.IsAuthenticated(manageCommand.Actor) {
		return nil, domain.ErrNotAuthenticated
	}
	if !permissions.CanManageAccounts(manageCommand.Actor) {
		return nil, domain.ErrPermissionDenied
	}

	user, err := s.findUser(ctx, manageCommand.Id)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(manageCommand); err != nil {
		return nil, err
	}

	if manageCommand.IsActive != nil && *manageCommand.IsActive != user.IsActive {
		user.SetActive(*manageCommand.IsActive)
		validatedUser, err := entities.NewValidatedUser(user)
		if err != nil {
			return nil, err
		}
		user, err = s.userRepo.Update(ctx, validatedUser)
		if err != nil {
			return nil, err
		}

		s.log.WithFields(logrus.Fields{
			"user_id":   user.Id,
			"is_active": user.IsActive,
			"by":        manageCommand.Actor.Id,
		}).Info("account status changed")
		publish(ctx, s.publisher, s.log, messaging.SubjectAccountStatusChanged, map[string]any{
			"id":        user.Id,
			"is_active": user.IsActive,
		})
	}

	return &command.ManageUserCommandResult{
		Result: mapper.NewAccountStatusResultFromEntity(user),
	}, nil
}

func (s *UserService) findUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return user, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
