package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMode is how a purchase was paid.
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "cash"
	PaymentModeCard PaymentMode = "card"
)

// Valid reports whether the payment mode is one of the supported values.
func (m PaymentMode) Valid() bool {
	return m == PaymentModeCash || m == PaymentModeCard
}

// Purchase is one completed sale. It is created exactly once per checkout and
// is immutable afterwards.
type Purchase struct {
	ID          uuid.UUID       `json:"id"`
	PaymentMode PaymentMode     `json:"payment_mode"`
	Total       float64         `json:"total"`    // Sum of line quantity times snapshotted unit price.
	VatRate     float64         `json:"vat_rate"` // Percentage applicable at the purchase instant.
	Lines       []*PurchaseLine `json:"lines"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PurchaseLine is one sold position of a purchase. The unit price is a
// snapshot taken at checkout time and is never re-derived from the catalog.
type PurchaseLine struct {
	ID         uuid.UUID `json:"id"`
	PurchaseID uuid.UUID `json:"purchase_id"`
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
}
