// interfaces/websocket/routes.go
package websocket

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// RegisterWebSocketRoutes mounts /ws behind the auth middleware. Requests
// without a valid token are rejected before the upgrade, so the hub never
// sees an unauthenticated connection.
func RegisterWebSocketRoutes(app *fiber.App, hub *Hub, protect fiber.Handler) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}, protect)

	app.Get("/ws", websocket.New(hub.ServeWS))
}
