package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a principal that can authenticate against the API.
// PasswordHash holds a bcrypt digest and must never leave the process
// in responses or logs.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Enabled      bool      `json:"enabled" db:"enabled"`
	Locked       bool      `json:"locked" db:"locked"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// NewUser creates a new enabled, unlocked User with the given credential hash
func NewUser(username, passwordHash string) *User {
	now := time.Now()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Enabled:      true,
		Locked:       false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
