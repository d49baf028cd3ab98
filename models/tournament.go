package models

import (
	"time"
)

// Registration status lifecycle of a tournament's signup window.
const (
	RegistrationOpen       = "Open"
	RegistrationClosed     = "Closed"
	RegistrationInvitation = "Invitation"
)

// DefaultTournamentImage is used when a tournament is created without artwork.
const DefaultTournamentImage = "https://picsum.photos/800/450?random=99"

// Tournament is one competitive event and its metadata.
type Tournament struct {
	ID                   string     `json:"id" gorm:"primaryKey"`
	Title                string     `json:"title" gorm:"not null"`
	Slug                 string     `json:"slug" gorm:"index"`
	Game                 string     `json:"game" gorm:"not null;index"`
	Prize                string     `json:"prize" gorm:"default:'TBD'"`
	EntryFee             string     `json:"entryFee" gorm:"default:'Free'"`
	Date                 time.Time  `json:"date" gorm:"not null"`
	StartTime            string     `json:"startTime,omitempty"`
	EndTime              string     `json:"endTime,omitempty"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty" gorm:"index"`
	Location             string     `json:"location" gorm:"not null"`
	RegistrationStatus   string     `json:"registrationStatus" gorm:"default:'Open';index"`
	MaxParticipants      int        `json:"maxParticipants" gorm:"not null"`
	Participants         int        `json:"participants" gorm:"default:0"`
	Description          string     `json:"description" gorm:"type:text;not null"`
	Rules                string     `json:"rules,omitempty" gorm:"type:text"`
	ImageURL             string     `json:"imageUrl"`
	ContactEmail         string     `json:"contactEmail" gorm:"not null"`
	CreatedAt            time.Time  `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt            time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// ValidRegistrationStatus reports whether s is one of the known states.
func ValidRegistrationStatus(s string) bool {
	switch s {
	case RegistrationOpen, RegistrationClosed, RegistrationInvitation:
		return true
	}
	return false
}
