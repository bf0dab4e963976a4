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
	mockUsecase "metroshelter/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPropertyTestContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(""))
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPropertyHandler_DeleteProperty_NonOwnerAgentIsForbidden(t *testing.T) {
	uc := mockUsecase.NewMockListingUsecase(t)
	handler := NewPropertyHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	propertyID := uuid.New()
	listing := &entity.Property{ID: propertyID, AuthorEmail: "owner@example.com"}
	uc.On("GetProperty", mock.Anything, propertyID).Return(listing, nil)

	c, rec := newPropertyTestContext(t, http.MethodDelete, "/properties/details/"+propertyID.String())
	c.SetParamNames("id")
	c.SetParamValues(propertyID.String())
	deliverycontext.SetAuth(c, &deliverycontext.Auth{
		UserID: uuid.New(),
		Email:  "other-agent@example.com",
		Role:   entity.RoleAgent,
	})

	require.NoError(t, handler.DeleteProperty(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	uc.AssertNotCalled(t, "DeleteProperty", mock.Anything, mock.Anything)
}

func TestPropertyHandler_DeleteProperty_OwnerAllowed(t *testing.T) {
	uc := mockUsecase.NewMockListingUsecase(t)
	handler := NewPropertyHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	propertyID := uuid.New()
	listing := &entity.Property{ID: propertyID, AuthorEmail: "owner@example.com"}
	uc.On("GetProperty", mock.Anything, propertyID).Return(listing, nil)
	uc.On("DeleteProperty", mock.Anything, propertyID).Return(nil)

	c, rec := newPropertyTestContext(t, http.MethodDelete, "/properties/details/"+propertyID.String())
	c.SetParamNames("id")
	c.SetParamValues(propertyID.String())
	deliverycontext.SetAuth(c, &deliverycontext.Auth{
		UserID: uuid.New(),
		Email:  "owner@example.com",
		Role:   entity.RoleAgent,
	})

	require.NoError(t, handler.DeleteProperty(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPropertyHandler_DeleteProperty_AdminBypassesOwnership(t *testing.T) {
	uc := mockUsecase.NewMockListingUsecase(t)
	handler := NewPropertyHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	propertyID := uuid.New()
	uc.On("DeleteProperty", mock.Anything, propertyID).Return(nil)

	c, rec := newPropertyTestContext(t, http.MethodDelete, "/properties/details/"+propertyID.String())
	c.SetParamNames("id")
	c.SetParamValues(propertyID.String())
	deliverycontext.SetAuth(c, &deliverycontext.Auth{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   entity.RoleAdmin,
	})

	require.NoError(t, handler.DeleteProperty(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertNotCalled(t, "GetProperty", mock.Anything, mock.Anything)
}

func TestPropertyHandler_UpdateProperty_NonOwnerAgentIsForbidden(t *testing.T) {
	uc := mockUsecase.NewMockListingUsecase(t)
	handler := NewPropertyHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	propertyID := uuid.New()
	listing := &entity.Property{ID: propertyID, AuthorEmail: "owner@example.com"}
	uc.On("GetProperty", mock.Anything, propertyID).Return(listing, nil)

	c, rec := newPropertyTestContext(t, http.MethodPatch, "/properties/details/"+propertyID.String())
	c.SetParamNames("id")
	c.SetParamValues(propertyID.String())
	deliverycontext.SetAuth(c, &deliverycontext.Auth{
		UserID: uuid.New(),
		Email:  "other-agent@example.com",
		Role:   entity.RoleAgent,
	})

	require.NoError(t, handler.UpdateProperty(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	uc.AssertNotCalled(t, "UpdateProperty", mock.Anything, mock.Anything, mock.Anything)
}
