// interfaces/api/handler/user_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinachat/chat-api/domain/service"
	"github.com/vinachat/chat-api/interfaces/api/middleware"
	"github.com/vinachat/chat-api/pkg/apperrors"
)

type UserHandler struct {
	userService       service.UserService
	friendshipService service.FriendshipService
	presenceService   service.PresenceService
}

func NewUserHandler(
	userService service.UserService,
	friendshipService service.FriendshipService,
	presenceService service.PresenceService,
) *UserHandler {
	return &UserHandler{
		userService:       userService,
		friendshipService: friendshipService,
		presenceService:   presenceService,
	}
}

func (h *UserHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	users, err := h.userService.SearchUsers(query, middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"users":   users,
	})
}

type friendRequest struct {
	FriendID uint `json:"friend_id"`
}

func (h *UserHandler) AddFriend(c *fiber.Ctx) error {
	var req friendRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.InvalidArg("invalid request body"))
	}

	if err := h.friendshipService.SendRequest(middleware.UserID(c), req.FriendID); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

func (h *UserHandler) AcceptFriend(c *fiber.Ctx) error {
	var req friendRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.InvalidArg("invalid request body"))
	}

	if err := h.friendshipService.AcceptRequest(middleware.UserID(c), req.FriendID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *UserHandler) Friends(c *fiber.Ctx) error {
	friends, err := h.friendshipService.GetFriends(middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}

	// Augment with live presence so the client can render online badges.
	result := make([]fiber.Map, 0, len(friends))
	for _, friend := range friends {
		online, err := h.presenceService.IsUserOnline(friend.ID)
		if err != nil {
			online = false
		}
		result = append(result, fiber.Map{
			"user":   friend,
			"online": online,
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"friends": result,
	})
}

func (h *UserHandler) FriendRequests(c *fiber.Ctx) error {
	requests, err := h.friendshipService.GetPendingRequests(middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"requests": requests,
	})
}
