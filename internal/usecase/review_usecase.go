package usecase

import (
	"context"

	"metroshelter/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase defines the interface for review-related business operations.
type ReviewUsecase interface {
	AddReview(ctx context.Context, input *AddReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
	ListReviews(ctx context.Context) ([]*entity.Review, error)
	ListReviewsForProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Review, error)
}

// --- Input DTOs ---

// AddReviewInput defines the data required to attach a review to a property.
type AddReviewInput struct {
	PropertyID  uuid.UUID `json:"propertyId" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	ImageRef    string    `json:"image"`
	Description string    `json:"reviewDescription" validate:"required"`
}
