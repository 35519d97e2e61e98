// domain/service/presence_service.go
package service

// PresenceService tracks which users currently hold at least one live
// connection. Presence is advisory and never persisted beyond a TTL.
type PresenceService interface {
	SetUserOnline(userID uint) error
	SetUserOffline(userID uint) error
	IsUserOnline(userID uint) (bool, error)
}
