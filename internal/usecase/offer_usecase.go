// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"metroshelter/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferUsecase defines the interface for purchase-offer business operations.
type OfferUsecase interface {
	CreateOffer(ctx context.Context, input *CreateOfferInput) (*entity.Offer, error)
	SetOfferStatus(ctx context.Context, offerID uuid.UUID, status entity.OfferStatus) (*entity.Offer, error)
	MarkPaid(ctx context.Context, offerID uuid.UUID, transactionID string) (*entity.Offer, error)
	ListOffersForBuyer(ctx context.Context, buyerEmail string) ([]*entity.Offer, error)
	ListAllOffers(ctx context.Context) ([]*entity.Offer, error)
}

// --- Input DTOs ---

// CreateOfferInput defines the data required to place an offer on a property.
type CreateOfferInput struct {
	PropertyID  uuid.UUID `json:"propertyId" validate:"required"`
	BuyerEmail  string    `json:"buyerEmail" validate:"required,email"`
	BuyerName   string    `json:"buyerName" validate:"required"`
	OfferAmount float64   `json:"offerAmount" validate:"required,gt=0"`
	OfferDate   time.Time `json:"offerDate" validate:"required"`
}
