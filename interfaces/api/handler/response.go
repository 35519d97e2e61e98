// interfaces/api/handler/response.go
package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/vinachat/chat-api/pkg/apperrors"
)

// fail maps a service error to the JSON error envelope. Internal causes are
// logged server side and never leak into the response body.
func fail(c *fiber.Ctx, err error) error {
	status := apperrors.StatusOf(err)
	message := err.Error()

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		message = "internal server error"
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
