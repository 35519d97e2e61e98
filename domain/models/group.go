// domain/models/group.go
package models

import "time"

// Group - named chat group. The creator is always a member; deleting a group
// removes its memberships and messages.
type Group struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	CreatorID uint      `json:"creator_id" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Group) TableName() string {
	return "groups"
}

// GroupMember - membership row, unique per (group, user).
type GroupMember struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	GroupID  uint      `json:"group_id" gorm:"not null;uniqueIndex:idx_group_member"`
	UserID   uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_group_member"`
	JoinedAt time.Time `json:"joined_at" gorm:"autoCreateTime"`
}

func (GroupMember) TableName() string {
	return "group_members"
}
