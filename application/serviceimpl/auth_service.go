// application/serviceimpl/auth_service.go
package serviceimpl

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vinachat/chat-api/domain/models"
	"github.com/vinachat/chat-api/domain/repository"
	"github.com/vinachat/chat-api/domain/service"
	"github.com/vinachat/chat-api/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const maxCustomIDLength = 16

type tokenClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type authService struct {
	userRepo      repository.UserRepository
	blacklistRepo repository.TokenBlacklistRepository
	jwtSecret     []byte
	tokenTTL      time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	blacklistRepo repository.TokenBlacklistRepository,
	jwtSecret string,
	tokenTTL time.Duration,
) service.AuthService {
	return &authService{
		userRepo:      userRepo,
		blacklistRepo: blacklistRepo,
		jwtSecret:     []byte(jwtSecret),
		tokenTTL:      tokenTTL,
	}
}

func (s *authService) Register(username, password, customID string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	customID = strings.TrimSpace(customID)

	if username == "" || password == "" || customID == "" {
		return nil, apperrors.InvalidArg("username, password and custom id must not be empty")
	}
	if len(customID) > maxCustomIDLength {
		return nil, apperrors.InvalidArg("custom id must not exceed 16 characters")
	}

	usernameTaken, customIDTaken, err := s.userRepo.ExistsByUsernameOrCustomID(username, customID)
	if err != nil {
		return nil, apperrors.Internal("check existing users", err)
	}
	if usernameTaken {
		return nil, apperrors.AlreadyExists("username already taken")
	}
	if customIDTaken {
		return nil, apperrors.AlreadyExists("custom id already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("hash password", err)
	}

	user := &models.User{
		Username:     username,
		CustomID:     customID,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.Internal("create user", err)
	}
	return user, nil
}

func (s *authService) Login(identifier, password string) (string, *models.User, error) {
	identifier = strings.TrimSpace(identifier)
	password = strings.TrimSpace(password)
	if identifier == "" || password == "" {
		return "", nil, apperrors.InvalidArg("username and password must not be empty")
	}

	user, err := s.userRepo.FindByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.Unauthenticated("invalid username or password")
		}
		return "", nil, apperrors.Internal("load user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, apperrors.Unauthenticated("invalid username or password")
	}

	now := time.Now()
	claims := tokenClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, apperrors.Internal("sign token", err)
	}
	return token, user, nil
}

// Logout blacklists the token until the moment it would have expired anyway.
func (s *authService) Logout(token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return apperrors.Unauthenticated("invalid token")
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.blacklistRepo.Add(token, expiresAt); err != nil {
		return apperrors.Internal("blacklist token", err)
	}
	return nil
}

func (s *authService) ValidateToken(token string) (uint, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return 0, apperrors.Unauthenticated("invalid token")
	}

	blacklisted, err := s.blacklistRepo.IsBlacklisted(token)
	if err != nil {
		return 0, apperrors.Internal("check token blacklist", err)
	}
	if blacklisted {
		return 0, apperrors.Unauthenticated("token revoked")
	}
	return claims.UserID, nil
}

func (s *authService) GetUser(userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user does not exist")
		}
		return nil, apperrors.Internal("load user", err)
	}
	return user, nil
}

func (s *authService) parseToken(token string) (*tokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
