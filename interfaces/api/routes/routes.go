// interfaces/api/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinachat/chat-api/interfaces/api/handler"
)

// Handlers groups everything the route table mounts.
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Group   *handler.GroupHandler
	Message *handler.MessageHandler
}

// RegisterRoutes mounts the REST surface. protect is the auth middleware;
// register and login are the only unauthenticated endpoints.
func RegisterRoutes(app *fiber.App, h *Handlers, protect fiber.Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", protect, h.Auth.Logout)
	auth.Get("/me", protect, h.Auth.Me)
	auth.Post("/upload_avatar", protect, h.Auth.UploadAvatar)

	users := api.Group("/users", protect)
	users.Get("/search", h.User.Search)
	users.Post("/add_friend", h.User.AddFriend)
	users.Post("/accept_friend", h.User.AcceptFriend)
	users.Get("/friends", h.User.Friends)
	users.Get("/friend_requests", h.User.FriendRequests)

	groups := api.Group("/groups", protect)
	groups.Post("/create", h.Group.Create)
	groups.Post("/add_member", h.Group.AddMember)
	groups.Post("/remove_member", h.Group.RemoveMember)
	groups.Post("/delete", h.Group.Delete)
	groups.Post("/send_message", h.Group.SendMessage)
	groups.Get("/history", h.Group.History)
	groups.Get("/list", h.Group.List)
	groups.Get("/:group_id/members", h.Group.Members)

	messages := api.Group("/messages", protect)
	messages.Post("/send", h.Message.Send)
	messages.Get("/history", h.Message.History)
	messages.Get("/conversations", h.Message.Conversations)
}
