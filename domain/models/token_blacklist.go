// domain/models/token_blacklist.go
package models

import "time"

// TokenBlacklist - tokens revoked by logout. Rows past ExpiresAt are inert
// and can be purged at any time.
type TokenBlacklist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"type:text;not null;uniqueIndex"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
