package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hitaloss/business/internal/domain"
	"github.com/hitaloss/business/internal/domain/entities"
	"github.com/hitaloss/business/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

// Create hashes the raw password and stores a new user.
func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}

	userModel := toUserModel(userEntity)

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return nil, translateWriteError(err, "create user "+userModel.Username)
	}

	return r.FindById(ctx, userModel.Id)
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapToUserEntity(&userModel), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapToUserEntity(&userModel), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	var userModels []UserModel
	if err := r.db.WithContext(ctx).Order("date_joined ASC").Find(&userModels).Error; err != nil {
		return nil, err
	}
	return mapToUserEntities(userModels), nil
}

// FindNewest returns the first limit users ordered by date joined.
func (r *UserRepository) FindNewest(ctx context.Context, limit int) ([]*entities.User, error) {
	var userModels []UserModel
	if err := r.db.WithContext(ctx).Order("date_joined ASC").Limit(limit).Find(&userModels).Error; err != nil {
		return nil, err
	}
	return mapToUserEntities(userModels), nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userModel := toUserModel(user.GetUser())

	if err := r.db.WithContext(ctx).Save(&userModel).Error; err != nil {
		return nil, translateWriteError(err, "update user "+userModel.Username)
	}

	return r.FindById(ctx, userModel.Id)
}

func translateWriteError(err error, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%s: %w", op, domain.ErrIntegrity)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toUserModel(user *entities.User) UserModel {
	return UserModel{
		Id:          user.Id,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		Username:    user.Username,
		Password:    user.Password,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DateJoined:  user.DateJoined,
		IsSeller:    user.IsSeller,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
	}
}

func mapToUserEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:          userModel.Id,
		CreatedAt:   userModel.CreatedAt,
		UpdatedAt:   userModel.UpdatedAt,
		Username:    userModel.Username,
		Password:    userModel.Password,
		FirstName:   userModel.FirstName,
		LastName:    userModel.LastName,
		DateJoined:  userModel.DateJoined,
		IsSeller:    userModel.IsSeller,
		IsActive:    userModel.IsActive,
		IsSuperuser: userModel.IsSuperuser,
	}
}

func mapToUserEntities(userModels []UserModel) []*entities.User {
	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, mapToUserEntity(&userModels[i]))
	}
	return users
}
