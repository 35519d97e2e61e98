// application/serviceimpl/user_service.go
package serviceimpl

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/vinachat/chat-api/domain/models"
	"github.com/vinachat/chat-api/domain/repository"
	"github.com/vinachat/chat-api/domain/service"
	"github.com/vinachat/chat-api/pkg/apperrors"
)

const searchLimit = 20

var allowedAvatarExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type userService struct {
	userRepo repository.UserRepository
	storage  service.FileStorageService
}

func NewUserService(userRepo repository.UserRepository, storage service.FileStorageService) service.UserService {
	return &userService{userRepo: userRepo, storage: storage}
}

func (s *userService) SearchUsers(query string, selfID uint) ([]*models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.InvalidArg("search query must not be empty")
	}

	users, err := s.userRepo.Search(query, selfID, searchLimit)
	if err != nil {
		return nil, apperrors.Internal("search users", err)
	}
	return users, nil
}

func (s *userService) UpdateAvatar(userID uint, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedAvatarExtensions[ext] {
		return "", apperrors.InvalidArg("only png, jpg, jpeg and gif files are accepted")
	}

	result, err := s.storage.UploadImage(file, fmt.Sprintf("avatars/%d", userID))
	if err != nil {
		return "", apperrors.Internal("upload avatar", err)
	}

	if err := s.userRepo.UpdateAvatarURL(userID, result.URL); err != nil {
		return "", apperrors.Internal("update avatar url", err)
	}
	return result.URL, nil
}
