package entity

import (
	"time"

	"github.com/google/uuid"
)

// PricePrediction is one append-only history point recorded per import event:
// the price and sales count reported for a product on a given date.
type PricePrediction struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	Date       time.Time `json:"date"`
	Price      float64   `json:"price"`
	SalesCount int       `json:"sales_count"`
	CreatedAt  time.Time `json:"created_at"`
}
