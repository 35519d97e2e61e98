// domain/models/friendship.go
package models

import "time"

// Friendship statuses. There is no rejected state: a pending request stays
// pending until the recipient accepts it.
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
)

// Friendship - one row per unordered user pair. UserID1 is the requester,
// UserID2 the recipient; only the recipient may accept.
type Friendship struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID1   uint      `json:"user_id1" gorm:"not null;uniqueIndex:idx_friendship_pair"`
	UserID2   uint      `json:"user_id2" gorm:"not null;uniqueIndex:idx_friendship_pair"`
	Status    string    `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time `json:"created_at"`
}

func (Friendship) TableName() string {
	return "friendships"
}
