package model

import (
	"time"

	"github.com/google/uuid"
)

// PricePredictionModel is the GORM-specific struct for the 'price_predictions'
// table. One row is appended per product per import event.
type PricePredictionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Date       time.Time `gorm:"not null"`
	Price      float64   `gorm:"type:decimal(12,2);not null"`
	SalesCount int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PricePredictionModel) TableName() string {
	return "price_predictions"
}
