package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "metroshelter/internal/delivery/context"
	"metroshelter/internal/domain/entity"
	"metroshelter/internal/domain/repository"
	mockRepo "metroshelter/internal/mocks/repository"
	mockService "metroshelter/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockService.MockTokenService
	userRepo   *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, userRepo, logger),
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
	}
}

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/offers", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func validToken(email string) *jwt.Token {
	return &jwt.Token{
		Valid:  true,
		Claims: jwt.MapClaims{"sub": email},
	}
}

func TestAuthMiddleware_Authenticate_LoadsFreshUserState(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{
		ID:      uuid.New(),
		Email:   "agent@example.com",
		Role:    entity.RoleAgent,
		IsFraud: true, // flagged after the token was issued
	}

	fx.tokenSvc.On("ValidateToken", "good-token").Return(validToken("agent@example.com"), nil)
	fx.userRepo.On("FindByEmail", mock.Anything, "agent@example.com").Return(user, nil)

	c, _ := newAuthTestContext("Bearer good-token")

	var captured *deliverycontext.Auth
	next := func(c echo.Context) error {
		captured = deliverycontext.GetAuth(c)

		return nil
	}

	require.NoError(t, fx.middleware.Authenticate(next)(c))
	require.NotNil(t, captured)
	assert.Equal(t, user.ID, captured.UserID)
	assert.Equal(t, entity.RoleAgent, captured.Role)
	assert.True(t, captured.IsFraud)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("")

	err := fx.middleware.Authenticate(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	err := fx.middleware.Authenticate(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_UnknownSubject(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.On("ValidateToken", "orphan-token").Return(validToken("ghost@example.com"), nil)
	fx.userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	c, rec := newAuthTestContext("Bearer orphan-token")

	err := fx.middleware.Authenticate(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole_Mismatch(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("")
	deliverycontext.SetAuth(c, &deliverycontext.Auth{
		UserID: uuid.New(),
		Email:  "user@example.com",
		Role:   entity.RoleUser,
	})

	gate := fx.middleware.RequireRole(entity.RoleAgent, entity.RoleAdmin)
	err := gate(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_Match(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, _ := newAuthTestContext("")
	deliverycontext.SetAuth(c, &deliverycontext.Auth{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   entity.RoleAdmin,
	})

	called := false
	gate := fx.middleware.RequireRole(entity.RoleAdmin)
	err := gate(func(echo.Context) error {
		called = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_RefuseFraudFlagged(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("")
	deliverycontext.SetAuth(c, &deliverycontext.Auth{
		UserID:  uuid.New(),
		Email:   "agent@example.com",
		Role:    entity.RoleAgent,
		IsFraud: true,
	})

	err := fx.middleware.RefuseFraudFlagged(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
