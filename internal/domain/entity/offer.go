// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OfferStatus is an offer's lifecycle state.
// pending → accepted → bought, or pending → rejected.
type OfferStatus string

const (
	// OfferStatusPending is the initial state of every new offer.
	OfferStatusPending OfferStatus = "pending"
	// OfferStatusAccepted marks the single winning offer on a property.
	OfferStatusAccepted OfferStatus = "accepted"
	// OfferStatusRejected marks a refused or outbid offer.
	OfferStatusRejected OfferStatus = "rejected"
	// OfferStatusBought marks an accepted offer whose payment completed.
	OfferStatusBought OfferStatus = "bought"
)

// String returns the string representation of the OfferStatus.
func (s OfferStatus) String() string {
	return string(s)
}

// IsValid checks if the OfferStatus is a known lifecycle state.
func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferStatusPending, OfferStatusAccepted, OfferStatusRejected, OfferStatusBought:
		return true
	default:
		return false
	}
}

// Offer is a buyer's bid on a Property.
// Invariant: for any property, at most one offer holds status accepted or
// bought at a time; accepting one offer rejects every sibling in the same
// transaction.
type Offer struct {
	ID            uuid.UUID   `json:"id"`
	BuyerEmail    string      `json:"buyerEmail"`
	BuyerName     string      `json:"buyerName"`
	OfferAmount   float64     `json:"offerAmount"`
	OfferDate     time.Time   `json:"offerDate"`
	Status        OfferStatus `json:"status"`
	TransactionID string      `json:"transactionId,omitempty"` // Set once the offer is bought.
	PropertyID    uuid.UUID   `json:"propertyId"`
	Property      *Property   `json:"property,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
