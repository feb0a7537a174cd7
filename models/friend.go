package models

import "time"

// Friend represents a person games can be lent to
type Friend struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Friend model
func (Friend) TableName() string {
	return "friends"
}
