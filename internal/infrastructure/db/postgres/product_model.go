package postgres

import (
	"time"

	"github.com/google/uuid"
)

type ProductModel struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	Description string    `gorm:"type:text;not null"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	Quantity    int       `gorm:"not null"`
	IsActive    bool      `gorm:"not null"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	User        UserModel `gorm:"foreignKey:UserId;references:Id;constraint:OnDelete:CASCADE"`
}

func (ProductModel) TableName() string {
	return "products"
}
