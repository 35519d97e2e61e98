// domain/repository/message_repository.go
package repository

import "github.com/vinachat/chat-api/domain/models"

// MessageRepository manages the durable message log. Messages are never
// updated or deleted individually; the only removal path is the group
// deletion cascade, which runs inside GroupRepository.Delete.
type MessageRepository interface {
	Create(message *models.Message) error
	// FindDirectHistory returns the messages between two users in both
	// directions, timestamp ascending.
	FindDirectHistory(userID, otherID uint) ([]*models.Message, error)
	// FindGroupHistory returns a group's messages, timestamp ascending.
	FindGroupHistory(groupID uint) ([]*models.Message, error)
	// LatestDirectMessages returns the newest direct message per peer of the
	// user, newest conversation first.
	LatestDirectMessages(userID uint) ([]*models.Message, error)
}
