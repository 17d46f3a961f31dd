package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hitaloss/business/internal/domain/entities"
	"github.com/hitaloss/business/internal/domain/repositories"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) repositories.TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, token *entities.Token) error {
	tokenModel := TokenModel{
		Key:       token.Key,
		UserId:    token.UserId,
		CreatedAt: token.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&tokenModel).Error; err != nil {
		return translateWriteError(err, "create token")
	}
	return nil
}

func (r *TokenRepository) FindByKey(ctx context.Context, key string) (*entities.Token, error) {
	return r.findOne(ctx, &TokenModel{Key: key})
}

func (r *TokenRepository) FindByUserId(ctx context.Context, userID uuid.UUID) (*entities.Token, error) {
	return r.findOne(ctx, &TokenModel{UserId: userID})
}

func (r *TokenRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where(&TokenModel{Key: key}).Delete(&TokenModel{}).Error
}

// findOne matches on the non-zero fields of cond.
func (r *TokenRepository) findOne(ctx context.Context, cond *TokenModel) (*entities.Token, error) {
	var tokenModel TokenModel
	if err := r.db.WithContext(ctx).Where(cond).First(&tokenModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entities.Token{
		Key:       tokenModel.Key,
		UserId:    tokenModel.UserId,
		CreatedAt: tokenModel.CreatedAt,
	}, nil
}
