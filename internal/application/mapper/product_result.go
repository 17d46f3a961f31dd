package mapper

import (
	"github.com/hitaloss/business/internal/application/common"
	"github.com/hitaloss/business/internal/domain/entities"
)

func NewProductResultFromEntity(product *entities.Product) *common.ProductResult {
	result := &common.ProductResult{
		Id:          product.Id,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		IsActive:    product.IsActive,
	}
	if product.User != nil {
		result.Seller = NewUserResultFromEntity(product.User)
	}
	return result
}

func NewProductSummaryResultFromEntity(product *entities.Product) *common.ProductSummaryResult {
	result := &common.ProductSummaryResult{
		Id:          product.Id,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		IsActive:    product.IsActive,
	}
	if product.User != nil {
		result.SellerId = NewSellerSummaryFromEntity(product.User)
	}
	return result
}

func NewProductSummaryResultsFromEntities(products []*entities.Product) []*common.ProductSummaryResult {
	results := make([]*common.ProductSummaryResult, 0, len(products))
	for _, product := range products {
		results = append(results, NewProductSummaryResultFromEntity(product))
	}
	return results
}
