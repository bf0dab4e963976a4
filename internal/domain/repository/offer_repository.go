// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"metroshelter/internal/domain/entity"
	"metroshelter/internal/errors"

	"github.com/google/uuid"
)

// ErrOfferNotFound is returned when an offer is not found.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository defines the interface for offer persistence.
type OfferRepository interface {
	// Create persists a new offer against a property.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID retrieves an offer by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindByBuyer retrieves a buyer's offers, newest first, with each property populated.
	FindByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Offer, error)

	// FindAll retrieves every offer, newest first, with each property populated.
	FindAll(ctx context.Context) ([]*entity.Offer, error)

	// FindByProperty retrieves all offers against a property.
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Offer, error)

	// UpdateStatus sets an offer's lifecycle status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OfferStatus) error

	// RejectSiblings marks every offer on the property except acceptedID as
	// rejected. Must run inside the same transaction as the accept step.
	RejectSiblings(ctx context.Context, propertyID, acceptedID uuid.UUID) error

	// MarkBought sets status bought and records the payment transaction id.
	MarkBought(ctx context.Context, id uuid.UUID, transactionID string) error
}
