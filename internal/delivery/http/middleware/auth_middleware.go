package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "metroshelter/internal/delivery/context"
	"metroshelter/internal/delivery/http/response"
	"metroshelter/internal/domain/entity"
	"metroshelter/internal/domain/repository"
	"metroshelter/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
// A valid token only proves identity; the caller's role and fraud flag are
// re-read from the user record on every request so revocations take effect
// immediately.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo, logger: logger}
}

// Authenticate validates the Bearer token and loads the caller onto the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Failed to parse token claims")
		}

		email, ok := claims["sub"].(string)
		if !ok || email == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Subject missing from token")
		}

		user, err := m.userRepo.FindByEmail(c.Request().Context(), email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return response.Unauthorized(c, "UNAUTHORIZED", "Unknown token subject")
			}
			m.logger.Error("auth lookup failed", "email", email, "error", err)

			return response.Unauthorized(c, "UNAUTHORIZED", "Could not verify token subject")
		}

		deliverycontext.SetAuth(c, &deliverycontext.Auth{
			UserID:  user.ID,
			Email:   user.Email,
			Role:    user.Role,
			IsFraud: user.IsFraud,
		})

		return next(c)
	}
}

// RequireRole is a middleware factory that admits only callers holding one of
// the given roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := deliverycontext.GetAuth(c)
			if auth == nil {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: caller identity missing")
			}

			if !allowed.Contains(auth.Role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: insufficient role")
			}

			return next(c)
		}
	}
}

// RefuseFraudFlagged blocks callers whose account carries the fraud flag.
// Used on listing creation so a flagged agent cannot publish new properties.
func (m *AuthMiddleware) RefuseFraudFlagged(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := deliverycontext.GetAuth(c)
		if auth == nil {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: caller identity missing")
		}

		if auth.IsFraud {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: account is flagged")
		}

		return next(c)
	}
}
