package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "metroshelter/internal/delivery/context"
	"metroshelter/internal/delivery/http/response"
	"metroshelter/internal/domain/entity"
	"metroshelter/internal/domain/repository"
	"metroshelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PropertyHandler holds dependencies for listing-related handlers.
type PropertyHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler, injected by Fx.
func NewPropertyHandler(uc usecase.ListingUsecase, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		uc:     uc,
		logger: logger,
	}
}

// readImage extracts the uploaded image from the multipart form. A missing
// file is not an error here; requiredness is decided by the caller.
func readImage(c echo.Context) (*usecase.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "read uploaded image")
	}

	return &usecase.ImageUpload{Data: data, Filename: fileHeader.Filename}, nil
}

func formFloat(c echo.Context, name string) (float64, bool) {
	raw := c.FormValue(name)
	if raw == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// CreateProperty creates a listing from a multipart form. The image file is
// required; the author is the authenticated agent.
func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	auth := deliverycontext.GetAuth(c)
	if auth == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Caller identity missing")
	}

	image, err := readImage(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Could not read uploaded image")
	}

	input := usecase.CreatePropertyInput{
		Title:       c.FormValue("title"),
		CityName:    c.FormValue("cityName"),
		Country:     c.FormValue("country"),
		FullAddress: c.FormValue("fullAddress"),
		Description: c.FormValue("description"),
		AuthorEmail: auth.Email,
		Image:       image,
	}
	if v, ok := formFloat(c, "lat"); ok {
		input.Lat = &v
	}
	if v, ok := formFloat(c, "lng"); ok {
		input.Lng = &v
	}
	input.StartPrice, _ = formFloat(c, "startPrice")
	input.EndPrice, _ = formFloat(c, "endPrice")

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	property, err := h.uc.CreateProperty(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, property, "Property created")
}

// requireListingOwner loads the listing and refuses callers who neither own it
// nor hold the admin role. Returns the echo response error when refused.
func (h *PropertyHandler) requireListingOwner(c echo.Context, propertyID uuid.UUID) (bool, error) {
	auth := deliverycontext.GetAuth(c)
	if auth == nil {
		return false, response.Unauthorized(c, "UNAUTHORIZED", "Caller identity missing")
	}
	if auth.Role == entity.RoleAdmin {
		return true, nil
	}

	property, err := h.uc.GetProperty(c.Request().Context(), propertyID)
	if err != nil {
		return false, errors.WithStack(err)
	}
	if property.AuthorEmail != auth.Email {
		return false, response.Forbidden(c, "FORBIDDEN", "Listings may only be changed by their owner")
	}

	return true, nil
}

// UpdateProperty merges multipart form fields into an existing listing. The
// image file is optional; omitting it keeps the stored one.
func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property id")
	}

	if ok, err := h.requireListingOwner(c, propertyID); !ok {
		return err
	}

	image, err := readImage(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Could not read uploaded image")
	}

	input := usecase.UpdatePropertyInput{Image: image}
	if v := c.FormValue("title"); v != "" {
		input.Title = &v
	}
	if v := c.FormValue("cityName"); v != "" {
		input.CityName = &v
	}
	if v := c.FormValue("country"); v != "" {
		input.Country = &v
	}
	if v := c.FormValue("fullAddress"); v != "" {
		input.FullAddress = &v
	}
	if v := c.FormValue("description"); v != "" {
		input.Description = &v
	}
	if v, ok := formFloat(c, "lat"); ok {
		input.Lat = &v
	}
	if v, ok := formFloat(c, "lng"); ok {
		input.Lng = &v
	}
	if v, ok := formFloat(c, "startPrice"); ok {
		input.StartPrice = &v
	}
	if v, ok := formFloat(c, "endPrice"); ok {
		input.EndPrice = &v
	}

	property, err := h.uc.UpdateProperty(c.Request().Context(), propertyID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, property, "Property updated")
}

// DeleteProperty removes a listing and releases its image.
func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property id")
	}

	if ok, err := h.requireListingOwner(c, propertyID); !ok {
		return err
	}

	if err := h.uc.DeleteProperty(c.Request().Context(), propertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Property deleted")
}

// GetProperty returns one listing with its reviews.
func (h *PropertyHandler) GetProperty(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property id")
	}

	property, err := h.uc.GetProperty(c.Request().Context(), propertyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, property, "")
}

// ListProperties returns listings, optionally narrowed by ?status= and
// ?advertised=true.
func (h *PropertyHandler) ListProperties(c echo.Context) error {
	filter := repository.PropertyFilter{
		Status: entity.PropertyStatus(c.QueryParam("status")),
	}
	if c.QueryParam("advertised") == "true" {
		filter.AdvertisedOnly = true
	}

	properties, err := h.uc.ListProperties(c.Request().Context(), &filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, properties, "")
}

// ListOwnProperties returns the authenticated agent's own listings. The email
// path parameter must match the caller.
func (h *PropertyHandler) ListOwnProperties(c echo.Context) error {
	auth := deliverycontext.GetAuth(c)
	if auth == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Caller identity missing")
	}

	email := c.Param("email")
	if email != auth.Email {
		return response.Forbidden(c, "FORBIDDEN", "Listings may only be read by their owner")
	}

	properties, err := h.uc.ListProperties(c.Request().Context(), &repository.PropertyFilter{
		AuthorEmail: email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, properties, "")
}

// setStatusRequest is the PATCH body for a verification status change.
type setStatusRequest struct {
	Status entity.PropertyStatus `json:"status" validate:"required"`
}

// SetStatus sets a listing's verification status.
func (h *PropertyHandler) SetStatus(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property id")
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetPropertyStatus(c.Request().Context(), propertyID, req.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Status updated")
}

// setAdvertiseRequest is the PATCH body for an advertisement flag change.
type setAdvertiseRequest struct {
	IsAdvertise bool `json:"isAdvertise"`
}

// SetAdvertise toggles a listing's advertisement flag.
func (h *PropertyHandler) SetAdvertise(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property id")
	}

	var req setAdvertiseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advertise input")
	}

	if err := h.uc.SetAdvertised(c.Request().Context(), propertyID, req.IsAdvertise); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Advertisement flag updated")
}
