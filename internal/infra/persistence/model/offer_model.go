package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel mirrors the 'offers' table. The (property_id, status) index backs
// the sibling-rejection sweep during offer acceptance.
type OfferModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerEmail    string    `gorm:"type:varchar(255);not null;index"`
	BuyerName     string    `gorm:"type:varchar(100);not null"`
	OfferAmount   float64   `gorm:"not null"`
	OfferDate     time.Time `gorm:"not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_offers_property_status,priority:2"`
	TransactionID string    `gorm:"type:varchar(255)"`
	PropertyID    uuid.UUID `gorm:"type:uuid;not null;index:idx_offers_property_status,priority:1"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time

	Property *PropertyModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
