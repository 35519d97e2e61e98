// infrastructure/persistence/postgres/token_blacklist_repository.go
package postgres

import (
	"time"

	"github.com/vinachat/chat-api/domain/models"
	"github.com/vinachat/chat-api/domain/repository"
	"gorm.io/gorm"
)

type tokenBlacklistRepository struct {
	db *gorm.DB
}

func NewTokenBlacklistRepository(db *gorm.DB) repository.TokenBlacklistRepository {
	return &tokenBlacklistRepository{db: db}
}

func (r *tokenBlacklistRepository) Add(token string, expiresAt time.Time) error {
	return r.db.Create(&models.TokenBlacklist{
		Token:     token,
		ExpiresAt: expiresAt,
	}).Error
}

func (r *tokenBlacklistRepository) IsBlacklisted(token string) (bool, error) {
	var count int64
	err := r.db.Model(&models.TokenBlacklist{}).
		Where("token = ? AND expires_at > ?", token, time.Now()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *tokenBlacklistRepository) PurgeExpired() error {
	return r.db.Where("expires_at <= ?", time.Now()).
		Delete(&models.TokenBlacklist{}).Error
}
