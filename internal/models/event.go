package models

import "time"

type Event struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"not null"`
	Slug        string    `gorm:"uniqueIndex;not null"`
	Category    string    `gorm:"index;not null"`
	Description string
	Venue       string
	StartsAt    time.Time `gorm:"index;not null"`
	TeamSize    int       `gorm:"not null;default:1"`
	PrizePool   int       `gorm:"not null;default:0"`
}
