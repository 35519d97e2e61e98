// application/serviceimpl/friendship_service.go
package serviceimpl

import (
	"errors"

	"github.com/vinachat/chat-api/domain/dto"
	"github.com/vinachat/chat-api/domain/models"
	"github.com/vinachat/chat-api/domain/repository"
	"github.com/vinachat/chat-api/domain/service"
	"github.com/vinachat/chat-api/pkg/apperrors"
	"gorm.io/gorm"
)

type friendshipService struct {
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
}

func NewFriendshipService(
	friendshipRepo repository.FriendshipRepository,
	userRepo repository.UserRepository,
) service.FriendshipService {
	return &friendshipService{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
	}
}

func (s *friendshipService) SendRequest(userID, friendID uint) error {
	if friendID == 0 {
		return apperrors.InvalidArg("friend id must not be empty")
	}
	if friendID == userID {
		return apperrors.InvalidArg("cannot befriend yourself")
	}

	if _, err := s.userRepo.FindByID(friendID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("user does not exist")
		}
		return apperrors.Internal("load user", err)
	}

	existing, err := s.friendshipRepo.FindByPair(userID, friendID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Internal("load friendship", err)
	}
	if existing != nil {
		if existing.Status == models.FriendshipAccepted {
			return apperrors.AlreadyExists("already friends")
		}
		return apperrors.AlreadyExists("friend request already pending")
	}

	friendship := &models.Friendship{
		UserID1: userID,
		UserID2: friendID,
		Status:  models.FriendshipPending,
	}
	if err := s.friendshipRepo.Create(friendship); err != nil {
		return apperrors.Internal("create friendship", err)
	}
	return nil
}

// AcceptRequest flips pending to accepted. Direction matters: only the user
// the request was sent to can accept it.
func (s *friendshipService) AcceptRequest(userID, friendID uint) error {
	if friendID == 0 {
		return apperrors.InvalidArg("friend id must not be empty")
	}

	friendship, err := s.friendshipRepo.FindPendingRequest(friendID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("friend request not found")
		}
		return apperrors.Internal("load friend request", err)
	}

	if err := s.friendshipRepo.UpdateStatus(friendship.ID, models.FriendshipAccepted); err != nil {
		return apperrors.Internal("accept friend request", err)
	}
	return nil
}

func (s *friendshipService) GetFriends(userID uint) ([]*models.User, error) {
	friendships, err := s.friendshipRepo.FindAcceptedByUserID(userID)
	if err != nil {
		return nil, apperrors.Internal("load friendships", err)
	}

	friends := make([]*models.User, 0, len(friendships))
	for _, f := range friendships {
		friendID := f.UserID2
		if friendID == userID {
			friendID = f.UserID1
		}
		friend, err := s.userRepo.FindByID(friendID)
		if err != nil {
			// A dangling row should not break the whole list.
			continue
		}
		friends = append(friends, friend)
	}
	return friends, nil
}

func (s *friendshipService) GetPendingRequests(userID uint) ([]*dto.FriendRequestDTO, error) {
	pending, err := s.friendshipRepo.FindPendingByRecipientID(userID)
	if err != nil {
		return nil, apperrors.Internal("load friend requests", err)
	}

	requests := make([]*dto.FriendRequestDTO, 0, len(pending))
	for _, f := range pending {
		requester, err := s.userRepo.FindByID(f.UserID1)
		if err != nil {
			continue
		}
		requests = append(requests, &dto.FriendRequestDTO{
			User:      requester,
			CreatedAt: f.CreatedAt,
		})
	}
	return requests, nil
}
