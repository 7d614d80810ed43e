package models

import "time"

// Review is a user's score and comment on a game.
// GameID and UserID are enforced by foreign key constraints in the database only.
type Review struct {
	ID        uint   `gorm:"primaryKey"`
	Score     int    `gorm:"not null"`
	Comment   string `gorm:"not null"`
	GameID    uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Game Game `gorm:"foreignKey:GameID"`
	User User `gorm:"foreignKey:UserID"`
}
