// pkg/app/app.go
package app

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/vinachat/chat-api/interfaces/api/middleware"
	"github.com/vinachat/chat-api/interfaces/api/routes"
	"github.com/vinachat/chat-api/interfaces/websocket"
	"github.com/vinachat/chat-api/pkg/configs"
	"github.com/vinachat/chat-api/pkg/di"
)

// New builds the fiber app with its middleware chain, the REST routes and
// the WebSocket endpoint.
func New(container *di.Container, cfg *configs.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "chat-api",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(compress.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if cfg.Storage.Type == configs.StorageLocal {
		app.Static(cfg.Storage.PublicBaseURL, cfg.Storage.LocalBaseDir)
	}

	protect := middleware.Protected(container.AuthService)
	routes.RegisterRoutes(app, container.Handlers, protect)
	websocket.RegisterWebSocketRoutes(app, container.Hub, protect)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
