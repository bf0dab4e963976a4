// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account: a buyer, a listing agent or an administrator.
// Email is the login identifier issued by the external auth provider; uniqueness
// is a business rule, not a storage constraint, so duplicates are tolerated.
type User struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsFraud   bool      `json:"isFraud"` // Set by an admin; fraud-flagged agents may not create listings.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
