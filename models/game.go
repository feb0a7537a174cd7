package models

import "time"

// Game represents a game in the catalog
type Game struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Genre     string    `json:"genre" db:"genre"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Game model
func (Game) TableName() string {
	return "games"
}
