package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "metroshelter/internal/delivery/context"
	"metroshelter/internal/delivery/http/validator"
	"metroshelter/internal/domain/entity"
	domainerrors "metroshelter/internal/domain/errors"
	mockUsecase "metroshelter/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOfferTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestOfferHandler_SetStatus_Accepted(t *testing.T) {
	uc := mockUsecase.NewMockOfferUsecase(t)
	handler := NewOfferHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	offerID := uuid.New()
	accepted := &entity.Offer{ID: offerID, Status: entity.OfferStatusAccepted}

	uc.On("SetOfferStatus", mock.Anything, offerID, entity.OfferStatusAccepted).
		Return(accepted, nil)

	c, rec := newOfferTestContext(t, http.MethodPatch, "/offers/"+offerID.String()+"/status",
		`{"status":"accepted"}`)
	c.SetParamNames("id")
	c.SetParamValues(offerID.String())

	require.NoError(t, handler.SetStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accepted"`)
}

func TestOfferHandler_SetStatus_MissingStatusFailsValidation(t *testing.T) {
	uc := mockUsecase.NewMockOfferUsecase(t)
	handler := NewOfferHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	offerID := uuid.New()

	c, _ := newOfferTestContext(t, http.MethodPatch, "/offers/"+offerID.String()+"/status", `{}`)
	c.SetParamNames("id")
	c.SetParamValues(offerID.String())

	err := handler.SetStatus(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	uc.AssertNotCalled(t, "SetOfferStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOfferHandler_SetStatus_InvalidID(t *testing.T) {
	uc := mockUsecase.NewMockOfferUsecase(t)
	handler := NewOfferHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newOfferTestContext(t, http.MethodPatch, "/offers/not-a-uuid/status",
		`{"status":"accepted"}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.SetStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOfferHandler_ListBuyerOffers_WrongEmailIsForbidden(t *testing.T) {
	uc := mockUsecase.NewMockOfferUsecase(t)
	handler := NewOfferHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newOfferTestContext(t, http.MethodGet, "/offers/other@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("other@example.com")
	deliverycontext.SetAuth(c, &deliverycontext.Auth{
		UserID: uuid.New(),
		Email:  "buyer@example.com",
		Role:   entity.RoleUser,
	})

	require.NoError(t, handler.ListBuyerOffers(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	uc.AssertNotCalled(t, "ListOffersForBuyer", mock.Anything, mock.Anything)
}

func TestOfferHandler_ListBuyerOffers_OwnEmail(t *testing.T) {
	uc := mockUsecase.NewMockOfferUsecase(t)
	handler := NewOfferHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	offers := []*entity.Offer{{ID: uuid.New(), BuyerEmail: "buyer@example.com"}}
	uc.On("ListOffersForBuyer", mock.Anything, "buyer@example.com").Return(offers, nil)

	c, rec := newOfferTestContext(t, http.MethodGet, "/offers/buyer@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("buyer@example.com")
	deliverycontext.SetAuth(c, &deliverycontext.Auth{
		UserID: uuid.New(),
		Email:  "buyer@example.com",
		Role:   entity.RoleUser,
	})

	require.NoError(t, handler.ListBuyerOffers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "buyer@example.com")
}
