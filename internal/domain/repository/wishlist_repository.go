// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"metroshelter/internal/domain/entity"
	"metroshelter/internal/errors"

	"github.com/google/uuid"
)

// ErrWishlistEntryNotFound is returned when a wishlist entry is not found.
var ErrWishlistEntryNotFound = errors.New("wishlist entry not found")

// ErrDuplicateWishlistEntry is returned when the author already saved the property.
var ErrDuplicateWishlistEntry = errors.New("property already on wishlist")

// WishlistRepository defines the interface for wishlist persistence.
type WishlistRepository interface {
	// Create persists a new wishlist entry.
	Create(ctx context.Context, entry *entity.WishlistEntry) error

	// FindByID retrieves a wishlist entry by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WishlistEntry, error)

	// FindByAuthor retrieves a buyer's wishlist, newest first, with each
	// property populated.
	FindByAuthor(ctx context.Context, authorEmail string) ([]*entity.WishlistEntry, error)

	// Delete removes a wishlist entry by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
