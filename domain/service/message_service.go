// domain/service/message_service.go
package service

import (
	"github.com/vinachat/chat-api/domain/dto"
	"github.com/vinachat/chat-api/domain/models"
)

// MessageService serves message history over REST. Sending goes through
// ChatService so the REST and realtime paths share one dispatch algorithm.
type MessageService interface {
	// GetDirectHistory requires no friendship, only that both users exist.
	GetDirectHistory(userID, friendID uint) ([]*models.Message, error)
	// GetGroupHistory is members-only.
	GetGroupHistory(userID, groupID uint) ([]*models.Message, error)
	GetConversations(userID uint) ([]*dto.ConversationDTO, error)
}
