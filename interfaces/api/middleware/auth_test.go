// interfaces/api/middleware/auth_test.go
package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinachat/chat-api/domain/models"
	"github.com/vinachat/chat-api/pkg/apperrors"
)

// fakeAuthService accepts exactly one token and counts validations so tests
// can assert nothing downstream ran on a rejection.
type fakeAuthService struct {
	validToken    string
	user          *models.User
	validateCalls int
}

func (s *fakeAuthService) Register(username, password, customID string) (*models.User, error) {
	return nil, apperrors.Internal("not implemented", nil)
}

func (s *fakeAuthService) Login(identifier, password string) (string, *models.User, error) {
	return "", nil, apperrors.Internal("not implemented", nil)
}

func (s *fakeAuthService) Logout(token string) error {
	return apperrors.Internal("not implemented", nil)
}

func (s *fakeAuthService) ValidateToken(token string) (uint, error) {
	s.validateCalls++
	if token != s.validToken {
		return 0, apperrors.Unauthenticated("invalid token")
	}
	return s.user.ID, nil
}

func (s *fakeAuthService) GetUser(userID uint) (*models.User, error) {
	if userID != s.user.ID {
		return nil, apperrors.NotFound("user does not exist")
	}
	return s.user, nil
}

func newProtectedApp(auth *fakeAuthService) (*fiber.App, *int) {
	handlerCalls := 0
	app := fiber.New()
	app.Get("/protected", Protected(auth), func(c *fiber.Ctx) error {
		handlerCalls++
		return c.JSON(fiber.Map{
			"user_id":  UserID(c),
			"username": c.Locals("username"),
		})
	})
	return app, &handlerCalls
}

func TestProtectedRejectsWithoutToken(t *testing.T) {
	auth := &fakeAuthService{validToken: "good", user: &models.User{ID: 7, Username: "alice"}}
	app, handlerCalls := newProtectedApp(auth)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Rejected before any service or handler ran.
	assert.Equal(t, 0, auth.validateCalls)
	assert.Equal(t, 0, *handlerCalls)
}

func TestProtectedRejectsInvalidToken(t *testing.T) {
	auth := &fakeAuthService{validToken: "good", user: &models.User{ID: 7, Username: "alice"}}
	app, handlerCalls := newProtectedApp(auth)

	for _, header := range []string{"Bearer garbage", "Bearer revoked-token", "garbage"} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, header)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}
	assert.Equal(t, 0, *handlerCalls)
}

func TestProtectedAcceptsBearerToken(t *testing.T) {
	auth := &fakeAuthService{validToken: "good", user: &models.User{ID: 7, Username: "alice"}}
	app, handlerCalls := newProtectedApp(auth)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer good")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, *handlerCalls)
}

func TestProtectedAcceptsQueryToken(t *testing.T) {
	auth := &fakeAuthService{validToken: "good", user: &models.User{ID: 7, Username: "alice"}}
	app, handlerCalls := newProtectedApp(auth)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected?token=good", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, *handlerCalls)
}
