package model

import (
	"time"
)

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"` // stored lowercased
	PasswordSalt []byte    `json:"-"`     // Not exposed
	PasswordHash []byte    `json:"-"`     // Not exposed
	CreatedAt    time.Time `json:"created_at"`
}
