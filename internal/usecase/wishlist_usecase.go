package usecase

import (
	"context"

	"metroshelter/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the interface for wishlist business operations.
type WishlistUsecase interface {
	SaveEntry(ctx context.Context, input *SaveWishlistInput) (*entity.WishlistEntry, error)
	ListForAuthor(ctx context.Context, authorEmail string) ([]*entity.WishlistEntry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
}

// --- Input DTOs ---

// SaveWishlistInput defines the data required to save a property to a wishlist.
type SaveWishlistInput struct {
	PropertyID  uuid.UUID `json:"propertyId" validate:"required"`
	AuthorEmail string    `json:"authorEmail" validate:"required,email"`
}
