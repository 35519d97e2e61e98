// interfaces/api/handler/message_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinachat/chat-api/domain/chat"
	"github.com/vinachat/chat-api/domain/service"
	"github.com/vinachat/chat-api/interfaces/api/middleware"
	"github.com/vinachat/chat-api/pkg/apperrors"
)

type MessageHandler struct {
	messageService service.MessageService
	chatService    service.ChatService
}

func NewMessageHandler(messageService service.MessageService, chatService service.ChatService) *MessageHandler {
	return &MessageHandler{messageService: messageService, chatService: chatService}
}

type sendMessageRequest struct {
	ReceiverID uint   `json:"receiver_id"`
	Content    string `json:"content"`
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.InvalidArg("invalid request body"))
	}

	message, err := h.chatService.Dispatch(middleware.UserID(c), chat.TypeDirect, req.ReceiverID, req.Content)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

func (h *MessageHandler) History(c *fiber.Ctx) error {
	friendID := c.QueryInt("friend_id")
	if friendID <= 0 {
		return fail(c, apperrors.InvalidArg("friend_id query parameter is required"))
	}

	messages, err := h.messageService.GetDirectHistory(middleware.UserID(c), uint(friendID))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"messages": messages,
	})
}

func (h *MessageHandler) Conversations(c *fiber.Ctx) error {
	conversations, err := h.messageService.GetConversations(middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"conversations": conversations,
	})
}
