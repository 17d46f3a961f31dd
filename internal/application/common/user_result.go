package common

import (
	"time"

	"github.com/google/uuid"
)

type UserResult struct {
	Id         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	DateJoined time.Time `json:"date_joined"`
	IsSeller   bool      `json:"is_seller"`
}

// SellerSummary is the owner projection embedded in product listings.
type SellerSummary struct {
	Id       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type AccountStatusResult struct {
	IsActive bool `json:"is_active"`
}
