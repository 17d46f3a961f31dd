package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const MaxQuantity = 2147483647

type Product struct {
	Id          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Description string
	Price       float64
	Quantity    int
	IsActive    bool
	UserId      uuid.UUID
	User        *User
}

// NewProduct returns an active product owned by seller.
func NewProduct(seller *User, description string, price float64, quantity int) *Product {
	now := time.Now().UTC()
	return &Product{
		Id:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		IsActive:    true,
		UserId:      seller.Id,
		User:        seller,
	}
}

func (p *Product) validate() error {
	if p.Description == "" {
		return errors.New("description must not be empty")
	}
	if p.Price < 0 {
		return errors.New("price must not be negative")
	}
	if p.Quantity < 0 || p.Quantity > MaxQuantity {
		return errors.New("quantity out of range")
	}
	if p.UserId == uuid.Nil {
		return errors.New("product must have an owner")
	}
	return nil
}

// ListingChanges holds the seller-editable fields; nil means unchanged.
type ListingChanges struct {
	Description *string
	Price       *float64
	Quantity    *int
}

func (p *Product) UpdateListing(changes ListingChanges) error {
	if changes.Description != nil {
		p.Description = *changes.Description
	}
	if changes.Price != nil {
		p.Price = *changes.Price
	}
	if changes.Quantity != nil {
		p.Quantity = *changes.Quantity
	}
	p.UpdatedAt = time.Now().UTC()
	return p.validate()
}

type ValidatedProduct struct {
	*Product
}

func NewValidatedProduct(product *Product) (*ValidatedProduct, error) {
	if err := product.validate(); err != nil {
		return nil, err
	}
	return &ValidatedProduct{Product: product}, nil
}

func (vp *ValidatedProduct) GetProduct() *Product {
	return vp.Product
}
