// domain/service/friendship_service.go
package service

import (
	"github.com/vinachat/chat-api/domain/dto"
	"github.com/vinachat/chat-api/domain/models"
)

// FriendshipService manages friend requests and the friend list. Requests
// only move pending -> accepted; there is no rejection or cancellation path.
type FriendshipService interface {
	SendRequest(userID, friendID uint) error
	// AcceptRequest succeeds only for the recipient of a pending request.
	AcceptRequest(userID, friendID uint) error
	GetFriends(userID uint) ([]*models.User, error)
	GetPendingRequests(userID uint) ([]*dto.FriendRequestDTO, error)
}
