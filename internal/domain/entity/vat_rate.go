package entity

import (
	"time"

	"github.com/google/uuid"
)

// VatRate is one VAT percentage effective from a given date. Multiple rates
// coexist; the rate applicable to a transaction is the most recent one whose
// effective date is not after the transaction date.
type VatRate struct {
	ID            uuid.UUID `json:"id"`
	EffectiveDate time.Time `json:"effective_date"`
	Percentage    float64   `json:"percentage"`
	CreatedAt     time.Time `json:"created_at"`
}

// AppliesTo reports whether the rate was already effective at the given instant.
func (r *VatRate) AppliesTo(at time.Time) bool {
	return !r.EffectiveDate.After(at)
}
