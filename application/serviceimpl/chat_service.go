// application/serviceimpl/chat_service.go
package serviceimpl

import (
	"errors"
	"log"
	"strings"

	"github.com/vinachat/chat-api/domain/chat"
	"github.com/vinachat/chat-api/domain/dto"
	"github.com/vinachat/chat-api/domain/models"
	"github.com/vinachat/chat-api/domain/port"
	"github.com/vinachat/chat-api/domain/repository"
	"github.com/vinachat/chat-api/domain/service"
	"github.com/vinachat/chat-api/pkg/apperrors"
	"gorm.io/gorm"
)

// chatService is the fan-out dispatcher. Both the realtime send_message event
// and the REST send endpoints funnel through Dispatch so one algorithm owns
// persistence and delivery.
type chatService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
	broadcaster port.RoomBroadcaster
}

func NewChatService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	broadcaster port.RoomBroadcaster,
) service.ChatService {
	return &chatService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		groupRepo:   groupRepo,
		broadcaster: broadcaster,
	}
}

// Dispatch persists the message, then broadcasts new_message to the
// conversation room and message_notification to every recipient's personal
// room. Nothing is emitted unless the record is durable; emission failures
// after that point cannot fail the dispatch.
func (s *chatService) Dispatch(senderID uint, chatType chat.Type, chatID uint, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.InvalidArg("message content must not be empty")
	}

	sender, err := s.userRepo.FindByID(senderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthenticated("sender does not exist")
		}
		return nil, apperrors.Internal("load sender", err)
	}

	message := &models.Message{
		SenderID: senderID,
		Content:  content,
	}

	var groupName string
	var notifyIDs []uint

	switch chatType {
	case chat.TypeDirect:
		if chatID == senderID {
			return nil, apperrors.InvalidArg("cannot send a message to yourself")
		}
		if _, err := s.userRepo.FindByID(chatID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("receiver does not exist")
			}
			return nil, apperrors.Internal("load receiver", err)
		}
		receiverID := chatID
		message.ReceiverID = &receiverID
		notifyIDs = []uint{receiverID}

	case chat.TypeGroup:
		group, err := s.groupRepo.FindByID(chatID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("group does not exist")
			}
			return nil, apperrors.Internal("load group", err)
		}
		isMember, err := s.groupRepo.IsMember(chatID, senderID)
		if err != nil {
			return nil, apperrors.Internal("membership check", err)
		}
		if !isMember {
			return nil, apperrors.Forbidden("not a member of this group")
		}
		groupID := chatID
		message.GroupID = &groupID
		groupName = group.Name

		memberIDs, err := s.groupRepo.MemberIDs(chatID)
		if err != nil {
			return nil, apperrors.Internal("load group members", err)
		}
		for _, id := range memberIDs {
			if id != senderID {
				notifyIDs = append(notifyIDs, id)
			}
		}

	default:
		return nil, apperrors.InvalidArg(chat.ErrInvalidChatType.Error())
	}

	// The point of no return: after this the message is durable and delivery
	// is best effort.
	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.Internal("persist message", err)
	}

	room, err := chat.RoomKey(chatType, chatID, senderID)
	if err != nil {
		// Unreachable after the switch above; log rather than lose the send.
		log.Printf("chat: resolve room after persist: %v", err)
		return message, nil
	}

	s.broadcaster.BroadcastToRoom(room, port.EventNewMessage, &dto.NewMessageEvent{
		ID:             message.ID,
		SenderID:       message.SenderID,
		SenderUsername: sender.Username,
		ReceiverID:     message.ReceiverID,
		GroupID:        message.GroupID,
		Content:        message.Content,
		Timestamp:      message.Timestamp,
		Type:           chatType,
	})

	notification := &dto.MessageNotificationEvent{
		FromUser:  sender.Username,
		GroupName: groupName,
		Content:   content,
		Type:      chatType,
	}
	for _, userID := range notifyIDs {
		s.broadcaster.BroadcastToUser(userID, port.EventMessageNotification, notification)
	}

	return message, nil
}
