package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "metroshelter/internal/delivery/context"
	"metroshelter/internal/delivery/http/response"
	"metroshelter/internal/domain/entity"
	"metroshelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OfferHandler holds dependencies for offer-related handlers.
type OfferHandler struct {
	uc     usecase.OfferUsecase
	logger *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler, injected by Fx.
func NewOfferHandler(uc usecase.OfferUsecase, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateOffer places a pending offer. The buyer identity comes from the
// authenticated caller, not the request body.
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	auth := deliverycontext.GetAuth(c)
	if auth == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Caller identity missing")
	}

	var input usecase.CreateOfferInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	input.BuyerEmail = auth.Email
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	offer, err := h.uc.CreateOffer(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offer, "Offer created")
}

// setOfferStatusRequest is the PATCH body for an offer status transition.
type setOfferStatusRequest struct {
	Status entity.OfferStatus `json:"status" validate:"required"`
}

// SetStatus transitions an offer. Accepting rejects every sibling offer on
// the same property atomically.
func (h *OfferHandler) SetStatus(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer id")
	}

	var req setOfferStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	offer, err := h.uc.SetOfferStatus(c.Request().Context(), offerID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer, "Offer status updated")
}

// payRequest is the PATCH body recording a completed payment.
type payRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
}

// Pay marks an offer bought and records the payment transaction id.
func (h *OfferHandler) Pay(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer id")
	}

	var req payRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	offer, err := h.uc.MarkPaid(c.Request().Context(), offerID, req.TransactionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer, "Offer paid")
}

// ListBuyerOffers returns the caller's own offers. The email path parameter
// must match the caller.
func (h *OfferHandler) ListBuyerOffers(c echo.Context) error {
	auth := deliverycontext.GetAuth(c)
	if auth == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Caller identity missing")
	}

	email := c.Param("email")
	if email != auth.Email {
		return response.Forbidden(c, "FORBIDDEN", "Offers may only be read by their buyer")
	}

	offers, err := h.uc.ListOffersForBuyer(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offers, "")
}

// ListAllOffers returns every offer for the agent and admin dashboards.
func (h *OfferHandler) ListAllOffers(c echo.Context) error {
	offers, err := h.uc.ListAllOffers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offers, "")
}
