package entities

import (
	"time"

	"github.com/google/uuid"
)

// Token is the credential handed out by login and mapped back to its user
// on every authenticated request.
type Token struct {
	Key       string
	UserId    uuid.UUID
	CreatedAt time.Time
}

func NewToken(key string, userID uuid.UUID) *Token {
	return &Token{
		Key:       key,
		UserId:    userID,
		CreatedAt: time.Now().UTC(),
	}
}
