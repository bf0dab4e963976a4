package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metroshelter/config"
	"metroshelter/internal/domain/entity"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	tokenString, err := svc.GenerateToken("agent@example.com", entity.RoleAgent)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "agent@example.com", claims["sub"])
	assert.Equal(t, "agent", claims["role"])
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	tokenString, err := svc.GenerateToken("user@example.com", entity.RoleUser)
	require.NoError(t, err)

	other := &jwtService{accessSecret: "different-secret", accessTTL: svc.accessTTL}
	_, err = other.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
