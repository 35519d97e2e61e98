// domain/service/group_service.go
package service

import (
	"github.com/vinachat/chat-api/domain/dto"
	"github.com/vinachat/chat-api/domain/models"
)

// GroupService manages groups and memberships. The creator's membership is
// permanent: it can neither be removed nor survive the group's deletion.
type GroupService interface {
	CreateGroup(creatorID uint, name string) (*models.Group, error)
	// AddMember may be called by any current member of the group.
	AddMember(actorID, groupID, userID uint) error
	// RemoveMember: the creator removes anyone, a member removes themself.
	RemoveMember(actorID, groupID, userID uint) error
	// DeleteGroup cascades to memberships and group messages. Creator only.
	DeleteGroup(actorID, groupID uint) error
	GetUserGroups(userID uint) ([]*dto.GroupDTO, error)
	GetMembers(actorID, groupID uint) ([]*dto.GroupMemberDTO, error)
}
