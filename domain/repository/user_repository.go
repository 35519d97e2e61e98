// domain/repository/user_repository.go
package repository

import "github.com/vinachat/chat-api/domain/models"

// UserRepository manages user accounts.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	// FindByIdentifier looks a user up by username or custom id, for login.
	FindByIdentifier(identifier string) (*models.User, error)
	// Search matches username or custom id partially, excluding excludeID.
	Search(query string, excludeID uint, limit int) ([]*models.User, error)
	// ExistsByUsernameOrCustomID reports which of the two is already taken.
	ExistsByUsernameOrCustomID(username, customID string) (usernameTaken, customIDTaken bool, err error)
	UpdateAvatarURL(id uint, avatarURL string) error
}
