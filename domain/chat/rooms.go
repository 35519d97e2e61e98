// domain/chat/rooms.go
package chat

import (
	"errors"
	"fmt"
)

// Type discriminates the two kinds of conversations a message can target.
type Type string

const (
	TypeDirect Type = "direct"
	TypeGroup  Type = "group"
)

var ErrInvalidChatType = errors.New("invalid chat type")

// ParseType validates a wire-level chat type tag.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeDirect, TypeGroup:
		return Type(s), nil
	}
	return "", ErrInvalidChatType
}

// RoomKey derives the broadcast room for a conversation. Direct rooms order
// the two user ids canonically so both participants land in the same room.
func RoomKey(t Type, chatID, selfID uint) (string, error) {
	switch t {
	case TypeDirect:
		return DirectRoom(selfID, chatID), nil
	case TypeGroup:
		return GroupRoom(chatID), nil
	}
	return "", ErrInvalidChatType
}

// DirectRoom is symmetric: DirectRoom(a, b) == DirectRoom(b, a).
func DirectRoom(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("private_%d_%d", a, b)
}

func GroupRoom(groupID uint) string {
	return fmt.Sprintf("group_%d", groupID)
}

// UserRoom is the personal notification room every connection of a user is
// subscribed to for its whole lifetime.
func UserRoom(userID uint) string {
	return fmt.Sprintf("user_%d", userID)
}
