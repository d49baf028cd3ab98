package models

import (
	"time"
)

// CommunityPost is a forum-style post. Author fields are denormalized from
// the authenticated user at creation time.
type CommunityPost struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Content      string    `json:"content" gorm:"type:text;not null"`
	AuthorID     string    `json:"authorId" gorm:"index"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar string    `json:"authorAvatar"`
	AuthorRole   string    `json:"authorRole"`
	Tags         []string  `json:"tags" gorm:"serializer:json"`
	Likes        int       `json:"likes" gorm:"default:0"`
	Comments     int       `json:"comments" gorm:"default:0"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}
