// domain/service/chat_service.go
package service

import (
	"github.com/vinachat/chat-api/domain/chat"
	"github.com/vinachat/chat-api/domain/models"
)

// ChatService is the fan-out dispatcher: one inbound send becomes one durable
// record plus a room broadcast and per-recipient notifications. Persistence
// failure aborts the dispatch before anything is emitted; emission failures
// after persistence are logged and swallowed.
type ChatService interface {
	Dispatch(senderID uint, chatType chat.Type, chatID uint, content string) (*models.Message, error)
}
