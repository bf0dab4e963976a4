package handler

import (
	"log/slog"
	"net/http"

	"metroshelter/internal/delivery/http/response"
	"metroshelter/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session token handlers.
type AuthHandler struct {
	uc     usecase.TokenUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.TokenUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// IssueToken signs a session token for a registered user.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var input usecase.IssueTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token request")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.uc.IssueToken(c.Request().Context(), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "Token issued")
}

// Logout acknowledges a logout. Tokens are stateless, so the client simply
// discards its copy; nothing is revoked server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}
