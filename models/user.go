package models

import (
	"fmt"
	"net/url"
	"time"
)

// User is a registered account. The bcrypt hash never leaves the process:
// the json:"-" tag keeps it out of every serialized response.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Avatar    string    `json:"avatar"`
	Role      string    `json:"role" gorm:"default:'user'"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// AvatarURL builds the generated avatar for a fresh account.
func AvatarURL(username string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(username))
}
