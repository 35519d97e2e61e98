// domain/dto/chat_dto.go
package dto

import (
	"time"

	"github.com/vinachat/chat-api/domain/chat"
)

// NewMessageEvent is broadcast to the conversation room; it is what renders
// the live chat view. ReceiverID or GroupID is set according to Type.
type NewMessageEvent struct {
	ID             uint      `json:"id"`
	SenderID       uint      `json:"sender_id"`
	SenderUsername string    `json:"sender_username"`
	ReceiverID     *uint     `json:"receiver_id,omitempty"`
	GroupID        *uint     `json:"group_id,omitempty"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	Type           chat.Type `json:"type"`
}

// MessageNotificationEvent goes to each recipient's personal room and powers
// badges and toasts outside the active conversation view.
type MessageNotificationEvent struct {
	FromUser  string    `json:"from_user"`
	GroupName string    `json:"group_name,omitempty"`
	Content   string    `json:"content"`
	Type      chat.Type `json:"type"`
}
