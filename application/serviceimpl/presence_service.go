// application/serviceimpl/presence_service.go
package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/vinachat/chat-api/domain/service"
)

const (
	presenceKeyPrefix = "presence:user:%d"

	// Refreshed on reconnect; a crashed process leaks no permanent keys.
	presenceTTL = 24 * time.Hour

	presenceOpTimeout = 2 * time.Second
)

type presenceService struct {
	client *redis.Client
}

// NewPresenceService tracks online users in Redis. Callers treat failures as
// advisory: the hub logs them and carries on.
func NewPresenceService(client *redis.Client) service.PresenceService {
	return &presenceService{client: client}
}

func (s *presenceService) SetUserOnline(userID uint) error {
	ctx, cancel := context.WithTimeout(context.Background(), presenceOpTimeout)
	defer cancel()
	return s.client.Set(ctx, presenceKey(userID), "1", presenceTTL).Err()
}

func (s *presenceService) SetUserOffline(userID uint) error {
	ctx, cancel := context.WithTimeout(context.Background(), presenceOpTimeout)
	defer cancel()
	return s.client.Del(ctx, presenceKey(userID)).Err()
}

func (s *presenceService) IsUserOnline(userID uint) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), presenceOpTimeout)
	defer cancel()
	n, err := s.client.Exists(ctx, presenceKey(userID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func presenceKey(userID uint) string {
	return fmt.Sprintf(presenceKeyPrefix, userID)
}
