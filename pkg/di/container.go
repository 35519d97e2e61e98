// pkg/di/container.go
package di

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/vinachat/chat-api/application/serviceimpl"
	"github.com/vinachat/chat-api/domain/repository"
	"github.com/vinachat/chat-api/domain/service"
	"github.com/vinachat/chat-api/infrastructure/adapter"
	"github.com/vinachat/chat-api/infrastructure/storage/cloudinary"
	"github.com/vinachat/chat-api/infrastructure/storage/local"
	"github.com/vinachat/chat-api/interfaces/api/handler"
	"github.com/vinachat/chat-api/interfaces/api/routes"
	"github.com/vinachat/chat-api/interfaces/websocket"
	"github.com/vinachat/chat-api/pkg/configs"
	"gorm.io/gorm"

	"github.com/vinachat/chat-api/infrastructure/persistence/postgres"
)

// Container wires repositories, services, the hub and the handlers. The hub
// is built before the chat service and attached to it afterwards, since each
// one needs the other.
type Container struct {
	Hub      *websocket.Hub
	Handlers *routes.Handlers

	AuthService   service.AuthService
	BlacklistRepo repository.TokenBlacklistRepository
}

func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *configs.Config) (*Container, error) {
	userRepo := postgres.NewUserRepository(db)
	friendshipRepo := postgres.NewFriendshipRepository(db)
	groupRepo := postgres.NewGroupRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	blacklistRepo := postgres.NewTokenBlacklistRepository(db)

	fileStorage, err := newFileStorage(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("init file storage: %w", err)
	}

	hub := websocket.NewHub(groupRepo)
	broadcaster := adapter.NewWebSocketAdapter(hub)

	authService := serviceimpl.NewAuthService(userRepo, blacklistRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := serviceimpl.NewUserService(userRepo, fileStorage)
	friendshipService := serviceimpl.NewFriendshipService(friendshipRepo, userRepo)
	groupService := serviceimpl.NewGroupService(groupRepo, userRepo)
	messageService := serviceimpl.NewMessageService(messageRepo, userRepo, groupRepo)
	chatService := serviceimpl.NewChatService(messageRepo, userRepo, groupRepo, broadcaster)
	presenceService := serviceimpl.NewPresenceService(redisClient)

	hub.SetChatService(chatService)
	hub.SetPresenceService(presenceService)

	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService, userService),
		User:    handler.NewUserHandler(userService, friendshipService, presenceService),
		Group:   handler.NewGroupHandler(groupService, messageService, chatService),
		Message: handler.NewMessageHandler(messageService, chatService),
	}

	return &Container{
		Hub:           hub,
		Handlers:      handlers,
		AuthService:   authService,
		BlacklistRepo: blacklistRepo,
	}, nil
}

func newFileStorage(cfg configs.StorageConfig) (service.FileStorageService, error) {
	switch cfg.Type {
	case configs.StorageCloudinary:
		return cloudinary.NewCloudinaryStorage(&cloudinary.CloudinaryConfig{
			CloudName:    cfg.CloudinaryCloudName,
			APIKey:       cfg.CloudinaryAPIKey,
			APISecret:    cfg.CloudinaryAPISecret,
			UploadFolder: cfg.CloudinaryFolder,
		})
	case configs.StorageLocal:
		return local.NewLocalStorage(&local.LocalConfig{
			BaseDir:       cfg.LocalBaseDir,
			PublicBaseURL: cfg.PublicBaseURL,
		})
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
