// domain/repository/token_blacklist_repository.go
package repository

import "time"

// TokenBlacklistRepository records tokens revoked by logout.
type TokenBlacklistRepository interface {
	Add(token string, expiresAt time.Time) error
	IsBlacklisted(token string) (bool, error)
	PurgeExpired() error
}
