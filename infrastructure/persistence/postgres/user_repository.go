// infrastructure/persistence/postgres/user_repository.go
package postgres

import (
	"github.com/vinachat/chat-api/domain/models"
	"github.com/vinachat/chat-api/domain/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIdentifier(identifier string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? OR custom_id = ?", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Search(query string, excludeID uint, limit int) ([]*models.User, error) {
	var users []*models.User
	pattern := "%" + query + "%"
	if err := r.db.Where("(username ILIKE ? OR custom_id ILIKE ?) AND id <> ?",
		pattern, pattern, excludeID).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ExistsByUsernameOrCustomID(username, customID string) (bool, bool, error) {
	var existing []*models.User
	if err := r.db.Where("username = ? OR custom_id = ?", username, customID).
		Find(&existing).Error; err != nil {
		return false, false, err
	}

	var usernameTaken, customIDTaken bool
	for _, u := range existing {
		if u.Username == username {
			usernameTaken = true
		}
		if u.CustomID == customID {
			customIDTaken = true
		}
	}
	return usernameTaken, customIDTaken, nil
}

func (r *userRepository) UpdateAvatarURL(id uint, avatarURL string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("avatar_url", avatarURL).Error
}
