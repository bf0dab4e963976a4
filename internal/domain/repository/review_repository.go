// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"metroshelter/internal/domain/entity"
	"metroshelter/internal/errors"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// Create persists a new review attached to a property.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindAll retrieves every review, newest first, with its property populated.
	FindAll(ctx context.Context) ([]*entity.Review, error)

	// FindByProperty retrieves a property's reviews in creation order.
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Review, error)

	// Delete removes a review by ID. Removing a review that is already gone is
	// a no-op, keeping the detach step idempotent.
	Delete(ctx context.Context, id uuid.UUID) error
}
