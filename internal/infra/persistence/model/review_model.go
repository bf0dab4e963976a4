package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. PropertyID references properties.id (UUID).
type ReviewModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Email       string    `gorm:"type:varchar(255);not null"`
	ImageRef    string    `gorm:"type:varchar(512);not null"`
	Description string    `gorm:"type:text;not null"`
	PropertyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"index"`

	Property *PropertyModel `gorm:"foreignKey:PropertyID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
