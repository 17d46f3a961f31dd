package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hitaloss/business/internal/application/command"
	"github.com/hitaloss/business/internal/application/interfaces"
	"github.com/hitaloss/business/internal/application/mapper"
	"github.com/hitaloss/business/internal/application/validation"
	"github.com/hitaloss/business/internal/domain"
	"github.com/hitaloss/business/internal/domain/entities"
	"github.com/hitaloss/business/internal/domain/repositories"
	"github.com/hitaloss/business/internal/infrastructure"
)

type AuthService struct {
	userRepo      repositories.UserRepository
	tokenRepo     repositories.TokenRepository
	jwtService    *infrastructure.JWTService
	redisService  *infrastructure.RedisService
	rateLimiter   *infrastructure.RateLimiter
	tokenCacheTTL time.Duration
	log           logrus.FieldLogger
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	jwtService *infrastructure.JWTService,
	redisService *infrastructure.RedisService,
	rateLimiter *infrastructure.RateLimiter,
	tokenCacheTTL time.Duration,
	log logrus.FieldLogger,
) interfaces.AuthService {
	return &AuthService{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		jwtService:    jwtService,
		redisService:  redisService,
		rateLimiter:   rateLimiter,
		tokenCacheTTL: tokenCacheTTL,
		log:           log.WithField("service", "auth"),
	}
}

// LoginUser checks the credentials and returns the user's token, issuing a
// new one when none exists or the stored one has expired.
func (s *AuthService) LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if err := validation.Struct(loginCommand); err != nil {
		return nil, err
	}

	if !s.rateLimiter.Allow(loginCommand.ClientIP + "|" + *loginCommand.Username) {
		return nil, domain.ErrThrottled
	}

	user, err := s.userRepo.FindByUsername(ctx, *loginCommand.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if err := user.CheckPassword(*loginCommand.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.getOrCreateToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		Token: token.Key,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *AuthService) getOrCreateToken(ctx context.Context, user *entities.User) (*entities.Token, error) {
	token, err := s.tokenRepo.FindByUserId(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	if token != nil {
		if _, err := s.jwtService.ParseToken(token.Key); err == nil {
			return token, nil
		}
		s.revoke(ctx, token.Key)
	}

	key, err := s.jwtService.GenerateToken(user.Id.String())
	if err != nil {
		return nil, err
	}

	token = entities.NewToken(key, user.Id)
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		if !errors.Is(err, domain.ErrIntegrity) {
			return nil, err
		}
		// A concurrent login stored its token first.
		token, err = s.tokenRepo.FindByUserId(ctx, user.Id)
		if err != nil {
			return nil, err
		}
		if token == nil {
			return nil, fmt.Errorf("token for user %s vanished after conflict", user.Id)
		}
	}

	s.cache(ctx, token.Key, user.Id)
	return token, nil
}

func (s *AuthService) Authenticate(ctx context.Context, key string) (*entities.User, error) {
	claims, err := s.jwtService.ParseToken(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	userID, err := s.lookupToken(ctx, key)
	if err != nil {
		return nil, err
	}
	if userID.String() != claims.UserID {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	return user, nil
}

// lookupToken resolves key to a user id through the cache, falling back to
// the token table.
func (s *AuthService) lookupToken(ctx context.Context, key string) (uuid.UUID, error) {
	cached, err := s.redisService.GetToken(ctx, key)
	if err == nil {
		if id, parseErr := uuid.Parse(cached); parseErr == nil {
			return id, nil
		}
	} else if !infrastructure.IsCacheMiss(err) {
		s.log.WithError(err).Warn("token cache read failed")
	}

	token, err := s.tokenRepo.FindByKey(ctx, key)
	if err != nil {
		return uuid.Nil, err
	}
	if token == nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	s.cache(ctx, token.Key, token.UserId)
	return token.UserId, nil
}

func (s *AuthService) cache(ctx context.Context, key string, userID uuid.UUID) {
	if err := s.redisService.SetToken(ctx, key, userID.String(), s.tokenCacheTTL); err != nil {
		s.log.WithError(err).Warn("token cache write failed")
	}
}

func (s *AuthService) revoke(ctx context.Context, key string) {
	if err := s.tokenRepo.Delete(ctx, key); err != nil {
		s.log.WithError(err).Warn("failed to delete expired token")
	}
	if err := s.redisService.DeleteToken(ctx, key); err != nil {
		s.log.WithError(err).Warn("token cache delete failed")
	}
}
