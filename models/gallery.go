package models

import (
	"time"
)

// Gallery item categories.
const (
	GalleryCategoryTournament = "Tournament"
	GalleryCategoryVenue      = "Venue"
	GalleryCategoryConference = "Conference"
	GalleryCategoryEvent      = "Event"
)

// GalleryItem is a published photo tied to an event.
// EventDate is a display label ("March, 2024"), not a timestamp.
type GalleryItem struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Event       string    `json:"event"`
	EventDate   string    `json:"date"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image"`
	Category    string    `json:"category" gorm:"index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}
