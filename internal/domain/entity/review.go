// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's testimonial attached to exactly one Property.
// The Property association and the listing's review list are two views of the
// same stored link, so they cannot drift apart.
type Review struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"` // Review author.
	ImageRef    string    `json:"image"`
	Description string    `json:"reviewDescription"`
	PropertyID  uuid.UUID `json:"propertyId"`
	Property    *Property `json:"property,omitempty"` // Populated on feeds that join the listing.
	CreatedAt   time.Time `json:"createdAt"`
}
