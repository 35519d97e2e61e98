// domain/repository/friendship_repository.go
package repository

import "github.com/vinachat/chat-api/domain/models"

// FriendshipRepository manages friendship rows.
type FriendshipRepository interface {
	Create(friendship *models.Friendship) error
	// FindByPair returns the row for the unordered pair, in either direction.
	FindByPair(userID, otherID uint) (*models.Friendship, error)
	// FindPendingRequest returns the pending request from requesterID to
	// recipientID, direction-sensitive: only the recipient may accept it.
	FindPendingRequest(requesterID, recipientID uint) (*models.Friendship, error)
	UpdateStatus(id uint, status string) error
	// FindAcceptedByUserID returns accepted friendships where the user is on
	// either side of the pair.
	FindAcceptedByUserID(userID uint) ([]*models.Friendship, error)
	// FindPendingByRecipientID returns incoming pending requests.
	FindPendingByRecipientID(userID uint) ([]*models.Friendship, error)
	// AreFriends reports whether an accepted friendship exists for the pair.
	AreFriends(userID, otherID uint) (bool, error)
}
