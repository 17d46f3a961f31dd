package postgres

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Username    string    `gorm:"size:150;uniqueIndex;not null"`
	Password    string    `gorm:"size:128;not null"`
	FirstName   string    `gorm:"size:50;not null"`
	LastName    string    `gorm:"size:50;not null"`
	DateJoined  time.Time `gorm:"not null;index"`
	IsSeller    bool      `gorm:"not null"`
	IsActive    bool      `gorm:"not null"`
	IsSuperuser bool      `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
