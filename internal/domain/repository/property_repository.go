// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"metroshelter/internal/domain/entity"
	"metroshelter/internal/errors"

	"github.com/google/uuid"
)

// ErrPropertyNotFound is returned when a property is not found.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyFilter narrows a listing query. Zero values mean "no restriction".
type PropertyFilter struct {
	Status         entity.PropertyStatus
	AuthorEmail    string
	AdvertisedOnly bool
}

// PropertyRepository defines the interface for listing persistence.
type PropertyRepository interface {
	// Create persists a new property.
	Create(ctx context.Context, property *entity.Property) error

	// FindByID retrieves a property with its reviews preloaded in creation order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// FindByIDForUpdate retrieves a property and locks its row for the duration
	// of the surrounding transaction. Callers outside a transaction must not use it.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// Find retrieves properties matching the filter, newest first.
	Find(ctx context.Context, filter PropertyFilter) ([]*entity.Property, error)

	// Update merges the given fields into an existing property record.
	Update(ctx context.Context, property *entity.Property) error

	// UpdateStatus sets the verification status tag.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PropertyStatus) error

	// UpdateAdvertised sets the advertisement flag.
	UpdateAdvertised(ctx context.Context, id uuid.UUID, advertised bool) error

	// Delete removes a property by ID. Dependent reviews, offers and wishlist
	// entries go with it via foreign keys.
	Delete(ctx context.Context, id uuid.UUID) error
}
