// application/serviceimpl/message_service.go
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

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
) service.MessageService {
	return &messageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		groupRepo:   groupRepo,
	}
}

func (s *messageService) GetDirectHistory(userID, friendID uint) ([]*models.Message, error) {
	if friendID == 0 {
		return nil, apperrors.InvalidArg("friend id must not be empty")
	}
	if _, err := s.userRepo.FindByID(friendID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user does not exist")
		}
		return nil, apperrors.Internal("load user", err)
	}

	messages, err := s.messageRepo.FindDirectHistory(userID, friendID)
	if err != nil {
		return nil, apperrors.Internal("load message history", err)
	}
	return messages, nil
}

func (s *messageService) GetGroupHistory(userID, groupID uint) ([]*models.Message, error) {
	if groupID == 0 {
		return nil, apperrors.InvalidArg("group id must not be empty")
	}
	if _, err := s.groupRepo.FindByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("group does not exist")
		}
		return nil, apperrors.Internal("load group", err)
	}

	isMember, err := s.groupRepo.IsMember(groupID, userID)
	if err != nil {
		return nil, apperrors.Internal("membership check", err)
	}
	if !isMember {
		return nil, apperrors.Forbidden("not a member of this group")
	}

	messages, err := s.messageRepo.FindGroupHistory(groupID)
	if err != nil {
		return nil, apperrors.Internal("load message history", err)
	}
	return messages, nil
}

func (s *messageService) GetConversations(userID uint) ([]*dto.ConversationDTO, error) {
	latest, err := s.messageRepo.LatestDirectMessages(userID)
	if err != nil {
		return nil, apperrors.Internal("load conversations", err)
	}

	result := make([]*dto.ConversationDTO, 0, len(latest))
	for _, msg := range latest {
		peerID := msg.SenderID
		if peerID == userID && msg.ReceiverID != nil {
			peerID = *msg.ReceiverID
		}
		peer, err := s.userRepo.FindByID(peerID)
		if err != nil {
			// A deleted peer should not break the whole list.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, apperrors.Internal("load user", err)
		}
		result = append(result, &dto.ConversationDTO{Friend: peer, LastMessage: msg})
	}
	return result, nil
}
