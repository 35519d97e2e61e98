// domain/models/message.go
package models

import "time"

// Message - immutable chat record. Exactly one of ReceiverID and GroupID is
// set: ReceiverID for direct messages, GroupID for group messages.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   uint      `json:"sender_id" gorm:"not null;index"`
	ReceiverID *uint     `json:"receiver_id,omitempty" gorm:"index"`
	GroupID    *uint     `json:"group_id,omitempty" gorm:"index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Timestamp  time.Time `json:"timestamp" gorm:"not null;index"`
}

func (Message) TableName() string {
	return "messages"
}

// IsDirect reports whether the message targets a single user.
func (m *Message) IsDirect() bool {
	return m.ReceiverID != nil
}
