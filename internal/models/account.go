package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user. Email is stored normalized (lowercase,
// trimmed) and is unique across accounts. PasswordHash never serializes.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
