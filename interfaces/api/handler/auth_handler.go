// interfaces/api/handler/auth_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinachat/chat-api/domain/service"
	"github.com/vinachat/chat-api/interfaces/api/middleware"
	"github.com/vinachat/chat-api/pkg/apperrors"
)

type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
}

func NewAuthHandler(authService service.AuthService, userService service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	CustomID string `json:"custom_id"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.InvalidArg("invalid request body"))
	}

	user, err := h.authService.Register(req.Username, req.Password, req.CustomID)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// loginRequest accepts the handle under either key; clients have always sent
// username even when logging in with a custom id.
type loginRequest struct {
	Username   string `json:"username"`
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r *loginRequest) identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Identifier
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.InvalidArg("invalid request body"))
	}

	token, user, err := h.authService.Login(req.identifier(), req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(middleware.Token(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.GetUser(middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

func (h *AuthHandler) UploadAvatar(c *fiber.Ctx) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return fail(c, apperrors.InvalidArg("avatar file is required"))
	}

	url, err := h.userService.UpdateAvatar(middleware.UserID(c), file)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"avatar_url": url,
	})
}
