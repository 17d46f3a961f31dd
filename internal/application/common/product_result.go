package common

import "github.com/google/uuid"

// ProductResult is the detail projection with the full owner expanded.
type ProductResult struct {
	Id          uuid.UUID   `json:"id"`
	Seller      *UserResult `json:"seller"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Quantity    int         `json:"quantity"`
	IsActive    bool        `json:"is_active"`
}

// ProductSummaryResult is the list projection.
type ProductSummaryResult struct {
	Id          uuid.UUID      `json:"id"`
	SellerId    *SellerSummary `json:"seller_id"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Quantity    int            `json:"quantity"`
	IsActive    bool           `json:"is_active"`
}
