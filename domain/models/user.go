// domain/models/user.go
package models

import "time"

// User - registered account. CustomID is the short handle other users search
// by; it never changes after registration.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomID     string    `json:"custom_id" gorm:"type:varchar(16);not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
	AvatarURL    string    `json:"avatar_url,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
