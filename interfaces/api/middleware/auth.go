// interfaces/api/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vinachat/chat-api/domain/service"
)

// Protected authenticates the request before it reaches a handler. The token
// comes from the Authorization header, or from the token query parameter for
// WebSocket upgrades where browsers cannot set headers.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return unauthorized(c, "missing authentication token")
		}

		userID, err := authService.ValidateToken(token)
		if err != nil {
			return unauthorized(c, "invalid or expired token")
		}

		user, err := authService.GetUser(userID)
		if err != nil {
			return unauthorized(c, "invalid or expired token")
		}

		c.Locals("userID", userID)
		c.Locals("username", user.Username)
		c.Locals("token", token)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return strings.TrimSpace(header)
	}
	return c.Query("token")
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// UserID reads the authenticated user id set by Protected.
func UserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userID").(uint)
	return userID
}

// Token reads the raw bearer token set by Protected.
func Token(c *fiber.Ctx) string {
	token, _ := c.Locals("token").(string)
	return token
}
