package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntryModel mirrors the 'wishlist_entries' table.
type WishlistEntryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_wishlist_author_property"`
	PropertyID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_author_property"`
	CreatedAt   time.Time

	Property *PropertyModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistEntryModel) TableName() string {
	return "wishlist_entries"
}
