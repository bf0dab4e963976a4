package context

import (
	"metroshelter/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyAuth is the key for storing the authenticated caller in echo.Context.
const KeyAuth ContextKey = "auth"

// Auth describes the authenticated caller for the current request. It is
// built from a fresh user lookup on every request, so role and fraud state
// reflect the database rather than stale token claims.
type Auth struct {
	UserID  uuid.UUID
	Email   string
	Role    entity.Role
	IsFraud bool
}

// GetAuth extracts the authenticated caller from echo.Context.
// Returns nil when the request did not pass authentication middleware.
func GetAuth(c echo.Context) *Auth {
	if auth, ok := c.Get(string(KeyAuth)).(*Auth); ok {
		return auth
	}

	return nil
}

// SetAuth stores the authenticated caller in echo.Context.
func SetAuth(c echo.Context, auth *Auth) {
	c.Set(string(KeyAuth), auth)
}
