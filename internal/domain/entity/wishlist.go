// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntry is a buyer's favorite marker on a Property. No workflow attached.
type WishlistEntry struct {
	ID          uuid.UUID `json:"id"`
	AuthorEmail string    `json:"authorEmail"`
	PropertyID  uuid.UUID `json:"propertyId"`
	Property    *Property `json:"property,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
