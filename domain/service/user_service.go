// domain/service/user_service.go
package service

import (
	"mime/multipart"

	"github.com/vinachat/chat-api/domain/models"
)

// UserService covers user lookup beyond auth.
type UserService interface {
	SearchUsers(query string, selfID uint) ([]*models.User, error)
	UpdateAvatar(userID uint, file *multipart.FileHeader) (string, error)
}
