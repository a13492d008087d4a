package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel is the GORM-specific struct for the 'purchases' table.
// Rows are written once at checkout and never updated.
type PurchaseModel struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PaymentMode string               `gorm:"size:16;not null"`
	Total       float64              `gorm:"type:decimal(12,2);not null"`
	VatRate     float64              `gorm:"type:decimal(5,2);not null;default:0"`
	Lines       []*PurchaseLineModel `gorm:"foreignKey:PurchaseID"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// PurchaseLineModel is the GORM-specific struct for the 'purchase_lines' table.
type PurchaseLineModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PurchaseID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity   int       `gorm:"not null;check:quantity > 0"`
	UnitPrice  float64   `gorm:"type:decimal(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseLineModel) TableName() string {
	return "purchase_lines"
}
