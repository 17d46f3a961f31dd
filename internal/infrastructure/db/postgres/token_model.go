package postgres

import (
	"time"

	"github.com/google/uuid"
)

type TokenModel struct {
	Key       string    `gorm:"size:512;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	User      UserModel `gorm:"foreignKey:UserId;references:Id;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

func (TokenModel) TableName() string {
	return "auth_tokens"
}
