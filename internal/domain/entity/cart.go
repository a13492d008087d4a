package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartState tracks where a cart is in its lifecycle.
type CartState string

const (
	CartStateEmpty     CartState = "empty"
	CartStateBuilding  CartState = "building"
	CartStateCommitted CartState = "committed"
)

// Cart is a transient, in-memory sale under construction. It is never
// persisted; only a successful checkout produces durable records.
type Cart struct {
	ID        uuid.UUID   `json:"id"`
	State     CartState   `json:"state"`
	Lines     []*CartLine `json:"lines"`
	CreatedAt time.Time   `json:"created_at"`
}

// CartLine is one product position in a cart. UnitPrice is the price observed
// when the product was added; checkout snapshots the then-current price again.
type CartLine struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
}

// NewCart returns an empty cart with a fresh identifier.
func NewCart() *Cart {
	return &Cart{
		ID:        uuid.New(),
		State:     CartStateEmpty,
		Lines:     []*CartLine{},
		CreatedAt: time.Now(),
	}
}

// Line returns the cart line for the given product, or nil.
func (c *Cart) Line(productID uuid.UUID) *CartLine {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line
		}
	}

	return nil
}

// Total is the sum of line quantity times the unit price observed at add time.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += float64(line.Quantity) * line.UnitPrice
	}

	return total
}

// Reset empties the cart after a committed checkout.
func (c *Cart) Reset() {
	c.Lines = []*CartLine{}
	c.State = CartStateEmpty
}
