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

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.ValidatedProduct) (*entities.Product, error) {
	productModel := toProductModel(product.GetProduct())

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&productModel).Error; err != nil {
		return nil, translateWriteError(err, "create product")
	}

	return r.FindById(ctx, productModel.Id)
}

func (r *ProductRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var productModel ProductModel
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&productModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapToProductEntity(&productModel), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*entities.Product, error) {
	var productModels []ProductModel
	if err := r.db.WithContext(ctx).Preload("User").Order("created_at ASC").Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, mapToProductEntity(&productModels[i]))
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entities.ValidatedProduct) (*entities.Product, error) {
	productModel := toProductModel(product.GetProduct())

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(&productModel).Error; err != nil {
		return nil, translateWriteError(err, "update product")
	}

	return r.FindById(ctx, productModel.Id)
}

func toProductModel(product *entities.Product) ProductModel {
	return ProductModel{
		Id:          product.Id,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		IsActive:    product.IsActive,
		UserId:      product.UserId,
	}
}

func mapToProductEntity(productModel *ProductModel) *entities.Product {
	product := &entities.Product{
		Id:          productModel.Id,
		CreatedAt:   productModel.CreatedAt,
		UpdatedAt:   productModel.UpdatedAt,
		Description: productModel.Description,
		Price:       productModel.Price,
		Quantity:    productModel.Quantity,
		IsActive:    productModel.IsActive,
		UserId:      productModel.UserId,
	}
	if productModel.User.Id != uuid.Nil {
		product.User = mapToUserEntity(&productModel.User)
	}
	return product
}
