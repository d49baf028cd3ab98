package models

import (
	"time"
)

// Arena is a bookable physical or online venue.
type Arena struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"index"`
	Location  string    `json:"location" gorm:"not null;index"`
	Capacity  int       `json:"capacity" gorm:"not null"`
	Rate      string    `json:"rate"`
	Equipment string    `json:"equipment" gorm:"type:text"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}
