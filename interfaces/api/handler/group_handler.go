// interfaces/api/handler/group_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinachat/chat-api/domain/chat"
	"github.com/vinachat/chat-api/domain/service"
	"github.com/vinachat/chat-api/interfaces/api/middleware"
	"github.com/vinachat/chat-api/pkg/apperrors"
)

type GroupHandler struct {
	groupService   service.GroupService
	messageService service.MessageService
	chatService    service.ChatService
}

func NewGroupHandler(
	groupService service.GroupService,
	messageService service.MessageService,
	chatService service.ChatService,
) *GroupHandler {
	return &GroupHandler{
		groupService:   groupService,
		messageService: messageService,
		chatService:    chatService,
	}
}

type createGroupRequest struct {
	Name string `json:"name"`
}

func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var req createGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.InvalidArg("invalid request body"))
	}

	group, err := h.groupService.CreateGroup(middleware.UserID(c), req.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"group":   group,
	})
}

type groupMemberRequest struct {
	GroupID uint `json:"group_id"`
	UserID  uint `json:"user_id"`
}

func (h *GroupHandler) AddMember(c *fiber.Ctx) error {
	var req groupMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.InvalidArg("invalid request body"))
	}

	if err := h.groupService.AddMember(middleware.UserID(c), req.GroupID, req.UserID); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

func (h *GroupHandler) RemoveMember(c *fiber.Ctx) error {
	var req groupMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.InvalidArg("invalid request body"))
	}

	if err := h.groupService.RemoveMember(middleware.UserID(c), req.GroupID, req.UserID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

type deleteGroupRequest struct {
	GroupID uint `json:"group_id"`
}

func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	var req deleteGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.InvalidArg("invalid request body"))
	}

	if err := h.groupService.DeleteGroup(middleware.UserID(c), req.GroupID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

type sendGroupMessageRequest struct {
	GroupID uint   `json:"group_id"`
	Content string `json:"content"`
}

func (h *GroupHandler) SendMessage(c *fiber.Ctx) error {
	var req sendGroupMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.InvalidArg("invalid request body"))
	}

	message, err := h.chatService.Dispatch(middleware.UserID(c), chat.TypeGroup, req.GroupID, req.Content)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

func (h *GroupHandler) History(c *fiber.Ctx) error {
	groupID := c.QueryInt("group_id")
	if groupID <= 0 {
		return fail(c, apperrors.InvalidArg("group_id query parameter is required"))
	}

	messages, err := h.messageService.GetGroupHistory(middleware.UserID(c), uint(groupID))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"messages": messages,
	})
}

func (h *GroupHandler) List(c *fiber.Ctx) error {
	groups, err := h.groupService.GetUserGroups(middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"groups":  groups,
	})
}

func (h *GroupHandler) Members(c *fiber.Ctx) error {
	groupID, err := c.ParamsInt("group_id")
	if err != nil || groupID <= 0 {
		return fail(c, apperrors.InvalidArg("invalid group id"))
	}

	members, err := h.groupService.GetMembers(middleware.UserID(c), uint(groupID))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"members": members,
	})
}
