package usecase

import (
	"context"

	"metroshelter/internal/domain/entity"
	"metroshelter/internal/domain/repository"

	"github.com/google/uuid"
)

// ListingUsecase defines the interface for property listing business operations.
type ListingUsecase interface {
	CreateProperty(ctx context.Context, input *CreatePropertyInput) (*entity.Property, error)
	UpdateProperty(ctx context.Context, propertyID uuid.UUID, input *UpdatePropertyInput) (*entity.Property, error)
	DeleteProperty(ctx context.Context, propertyID uuid.UUID) error
	GetProperty(ctx context.Context, propertyID uuid.UUID) (*entity.Property, error)
	ListProperties(ctx context.Context, filter *repository.PropertyFilter) ([]*entity.Property, error)
	SetPropertyStatus(ctx context.Context, propertyID uuid.UUID, status entity.PropertyStatus) error
	SetAdvertised(ctx context.Context, propertyID uuid.UUID, advertised bool) error
}

// --- Input DTOs ---

// ImageUpload carries raw uploaded image bytes together with the original filename.
// The filename is only used to preserve the extension in the stored reference.
type ImageUpload struct {
	Data     []byte
	Filename string
}

// CreatePropertyInput defines the data required to create a property listing.
type CreatePropertyInput struct {
	Title       string       `json:"title" validate:"required"`
	CityName    string       `json:"cityName" validate:"required"`
	Country     string       `json:"country" validate:"required"`
	Lat         *float64     `json:"lat" validate:"required"`
	Lng         *float64     `json:"lng" validate:"required"`
	FullAddress string       `json:"fullAddress" validate:"required"`
	StartPrice  float64      `json:"startPrice" validate:"required,gt=0"`
	EndPrice    float64      `json:"endPrice" validate:"required,gtefield=StartPrice"`
	AuthorEmail string       `json:"authorEmail" validate:"required,email"`
	Description string       `json:"description" validate:"required"`
	Image       *ImageUpload `json:"-" validate:"required"`
}

// UpdatePropertyInput defines the data for a partial property update.
// Nil fields are left untouched; a nil Image keeps the stored reference.
type UpdatePropertyInput struct {
	Title       *string      `json:"title,omitempty"`
	CityName    *string      `json:"cityName,omitempty"`
	Country     *string      `json:"country,omitempty"`
	Lat         *float64     `json:"lat,omitempty"`
	Lng         *float64     `json:"lng,omitempty"`
	FullAddress *string      `json:"fullAddress,omitempty"`
	StartPrice  *float64     `json:"startPrice,omitempty"`
	EndPrice    *float64     `json:"endPrice,omitempty"`
	Description *string      `json:"description,omitempty"`
	Image       *ImageUpload `json:"-"`
}
