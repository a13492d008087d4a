package model

import (
	"time"

	"github.com/google/uuid"
)

// VatRateModel is the GORM-specific struct for the 'vat_rates' table.
// Rates are append-only; superseded rates stay for historical lookups.
type VatRateModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EffectiveDate time.Time `gorm:"not null;index"`
	Percentage    float64   `gorm:"type:decimal(5,2);not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (VatRateModel) TableName() string {
	return "vat_rates"
}
