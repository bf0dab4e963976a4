package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "metroshelter/internal/delivery/context"
	"metroshelter/internal/delivery/http/response"
	"metroshelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler holds dependencies for wishlist-related handlers.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		uc:     uc,
		logger: logger,
	}
}

// SaveEntry stores a property on the caller's wishlist.
func (h *WishlistHandler) SaveEntry(c echo.Context) error {
	auth := deliverycontext.GetAuth(c)
	if auth == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Caller identity missing")
	}

	var input usecase.SaveWishlistInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	input.AuthorEmail = auth.Email
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.SaveEntry(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Wishlist entry saved")
}

// ListEntries returns the caller's wishlist. The email path parameter must
// match the caller.
func (h *WishlistHandler) ListEntries(c echo.Context) error {
	auth := deliverycontext.GetAuth(c)
	if auth == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Caller identity missing")
	}

	email := c.Param("email")
	if email != auth.Email {
		return response.Forbidden(c, "FORBIDDEN", "Wishlists may only be read by their owner")
	}

	entries, err := h.uc.ListForAuthor(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// DeleteEntry removes a wishlist entry.
func (h *WishlistHandler) DeleteEntry(c echo.Context) error {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid wishlist entry id")
	}

	if err := h.uc.DeleteEntry(c.Request().Context(), entryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Wishlist entry deleted")
}
