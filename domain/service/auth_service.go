// domain/service/auth_service.go
package service

import "github.com/vinachat/chat-api/domain/models"

// AuthService manages registration, login and token lifecycle. Passwords are
// stored as bcrypt hashes; there is no plaintext comparison anywhere.
type AuthService interface {
	Register(username, password, customID string) (*models.User, error)
	// Login accepts a username or custom id and returns a signed token.
	Login(identifier, password string) (string, *models.User, error)
	// Logout blacklists the token until its natural expiry.
	Logout(token string) error
	// ValidateToken returns the authenticated user id for a live token.
	ValidateToken(token string) (uint, error)
	GetUser(userID uint) (*models.User, error)
}
