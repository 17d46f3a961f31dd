package postgres

import (
	"time"

	"github.com/google/uuid"
)

type IdempotencyRecord struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key        string    `gorm:"size:255;uniqueIndex;not null"`
	Request    string    `gorm:"type:text"`
	Response   string    `gorm:"type:text"`
	StatusCode int
	CreatedAt  time.Time
}

func (IdempotencyRecord) TableName() string {
	return "idempotency_records"
}
