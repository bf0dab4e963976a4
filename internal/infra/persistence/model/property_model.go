package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyModel mirrors the 'properties' table. Reviews, offers and wishlist
// entries hang off it with cascading foreign keys, so a listing delete cannot
// leave dangling references.
type PropertyModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ImageRef     string    `gorm:"type:varchar(512);not null"`
	Title        string    `gorm:"type:varchar(255);not null"`
	CityName     string    `gorm:"type:varchar(100);not null"`
	Country      string    `gorm:"type:varchar(100);not null"`
	Lat          float64   `gorm:"not null"`
	Lng          float64   `gorm:"not null"`
	FullAddress  string    `gorm:"type:text;not null"`
	StartPrice   float64   `gorm:"not null"`
	EndPrice     float64   `gorm:"not null"`
	AuthorEmail  string    `gorm:"type:varchar(255);not null;index"`
	Description  string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	IsAdvertised bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time

	Reviews []*ReviewModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
