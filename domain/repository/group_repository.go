// domain/repository/group_repository.go
package repository

import "github.com/vinachat/chat-api/domain/models"

// GroupRepository manages groups and their memberships. IsMember and
// MemberIDs form the membership store the realtime layer authorizes and
// fans out against.
type GroupRepository interface {
	Create(group *models.Group) error
	FindByID(id uint) (*models.Group, error)
	// Delete removes the group together with its memberships and messages.
	Delete(id uint) error

	AddMember(member *models.GroupMember) error
	RemoveMember(groupID, userID uint) error
	IsMember(groupID, userID uint) (bool, error)
	MemberIDs(groupID uint) ([]uint, error)
	// Members returns membership rows joined with their users.
	Members(groupID uint) ([]*models.GroupMember, []*models.User, error)
	MemberCount(groupID uint) (int64, error)
	// FindByUserID returns every group the user is a member of.
	FindByUserID(userID uint) ([]*models.Group, error)
}
