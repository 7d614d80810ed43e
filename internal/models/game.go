package models

import "time"

// Game represents a game that users can review.
type Game struct {
	ID        uint    `gorm:"primaryKey"`
	Title     string  `gorm:"size:255;not null"`
	Genre     string  `gorm:"size:100;not null"`
	Platform  string  `gorm:"size:100;not null"`
	Price     float64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
