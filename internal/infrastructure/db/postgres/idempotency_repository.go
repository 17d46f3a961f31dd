package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hitaloss/business/internal/domain/entities"
	"github.com/hitaloss/business/internal/domain/repositories"
)

type IdempotencyRepository struct {
	db *gorm.DB
}

func NewIdempotencyRepository(db *gorm.DB) repositories.IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

func (r *IdempotencyRepository) Create(ctx context.Context, record *entities.IdempotencyRecord) (*entities.IdempotencyRecord, error) {
	model := IdempotencyRecord{
		Id:         record.Id,
		Key:        record.Key,
		Request:    record.Request,
		Response:   record.Response,
		StatusCode: record.StatusCode,
		CreatedAt:  record.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, translateWriteError(err, "create idempotency record")
	}
	return record, nil
}

func (r *IdempotencyRepository) FindByKey(ctx context.Context, key string) (*entities.IdempotencyRecord, error) {
	var model IdempotencyRecord
	if err := r.db.WithContext(ctx).Where(&IdempotencyRecord{Key: key}).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entities.IdempotencyRecord{
		Id:         model.Id,
		Key:        model.Key,
		Request:    model.Request,
		Response:   model.Response,
		StatusCode: model.StatusCode,
		CreatedAt:  model.CreatedAt,
	}, nil
}
