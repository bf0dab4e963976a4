// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PropertyStatus tags a listing's verification state. Stored as free text so
// historical records with ad-hoc tags keep loading; new writes go through IsValid.
type PropertyStatus string

const (
	// PropertyStatusPending is the initial state of a freshly created listing.
	PropertyStatusPending PropertyStatus = "pending"
	// PropertyStatusVerified marks a listing approved by an admin.
	PropertyStatusVerified PropertyStatus = "verified"
	// PropertyStatusRejected marks a listing refused by an admin.
	PropertyStatusRejected PropertyStatus = "rejected"
)

// String returns the string representation of the PropertyStatus.
func (s PropertyStatus) String() string {
	return string(s)
}

// IsValid checks if the PropertyStatus is one of the known verification states.
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusPending, PropertyStatusVerified, PropertyStatusRejected:
		return true
	default:
		return false
	}
}

// Property is a real-estate listing owned by the agent identified by AuthorEmail.
// Reviews carries the listing's reviews in creation order; it is populated on
// point lookups and left empty on list queries.
type Property struct {
	ID           uuid.UUID      `json:"id"`
	ImageRef     string         `json:"image"` // Blob-store reference, "<folder>/<name>.<ext>".
	Title        string         `json:"title"`
	CityName     string         `json:"cityName"`
	Country      string         `json:"country"`
	Lat          float64        `json:"lat"`
	Lng          float64        `json:"lng"`
	FullAddress  string         `json:"fullAddress"`
	StartPrice   float64        `json:"startPrice"`
	EndPrice     float64        `json:"endPrice"`
	AuthorEmail  string         `json:"authorEmail"`
	Description  string         `json:"description"`
	Status       PropertyStatus `json:"status"`
	IsAdvertised bool           `json:"isAdvertise"`
	Reviews      []*Review      `json:"propertyReviews,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
