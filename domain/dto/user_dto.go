// domain/dto/user_dto.go
package dto

import (
	"time"

	"github.com/vinachat/chat-api/domain/models"
)

// FriendRequestDTO pairs an incoming request with its requester.
type FriendRequestDTO struct {
	User      *models.User `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}

// GroupDTO adds the member count the group list endpoint reports.
type GroupDTO struct {
	*models.Group
	MemberCount int64 `json:"member_count"`
}

// GroupMemberDTO flattens a membership row with its user for the members
// endpoint.
type GroupMemberDTO struct {
	*models.User
	JoinedAt  time.Time `json:"joined_at"`
	IsCreator bool      `json:"is_creator"`
}

// ConversationDTO is one entry of the direct-conversation list: the peer and
// the latest message exchanged with them.
type ConversationDTO struct {
	Friend      *models.User    `json:"friend"`
	LastMessage *models.Message `json:"last_message"`
}
