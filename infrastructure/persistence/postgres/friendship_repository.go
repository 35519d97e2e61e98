// infrastructure/persistence/postgres/friendship_repository.go
package postgres

import (
	"errors"

	"github.com/vinachat/chat-api/domain/models"
	"github.com/vinachat/chat-api/domain/repository"
	"gorm.io/gorm"
)

type friendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Create(friendship *models.Friendship) error {
	return r.db.Create(friendship).Error
}

func (r *friendshipRepository) FindByPair(userID, otherID uint) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.Where(
		"(user_id1 = ? AND user_id2 = ?) OR (user_id1 = ? AND user_id2 = ?)",
		userID, otherID, otherID, userID,
	).First(&friendship).Error
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendshipRepository) FindPendingRequest(requesterID, recipientID uint) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.Where("user_id1 = ? AND user_id2 = ? AND status = ?",
		requesterID, recipientID, models.FriendshipPending).
		First(&friendship).Error
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendshipRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Friendship{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *friendshipRepository) FindAcceptedByUserID(userID uint) ([]*models.Friendship, error) {
	var friendships []*models.Friendship
	err := r.db.Where("(user_id1 = ? OR user_id2 = ?) AND status = ?",
		userID, userID, models.FriendshipAccepted).
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}
	return friendships, nil
}

func (r *friendshipRepository) FindPendingByRecipientID(userID uint) ([]*models.Friendship, error) {
	var friendships []*models.Friendship
	err := r.db.Where("user_id2 = ? AND status = ?", userID, models.FriendshipPending).
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}
	return friendships, nil
}

func (r *friendshipRepository) AreFriends(userID, otherID uint) (bool, error) {
	friendship, err := r.FindByPair(userID, otherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return friendship.Status == models.FriendshipAccepted, nil
}
