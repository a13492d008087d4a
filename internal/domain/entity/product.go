// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents one catalog item and its global on-hand stock.
type Product struct {
	ID               uuid.UUID   `json:"id"`                // The Global Unique Identifier (GUID) for the product.
	Name             string      `json:"name"`              // Display name shown in the catalog.
	Code             string      `json:"code"`              // Natural unique key; spreadsheet imports upsert by this code.
	Quantity         int         `json:"quantity"`          // Global on-hand stock, never negative.
	CriticalQuantity int         `json:"critical_quantity"` // Threshold below which the product counts as low stock.
	Price            float64     `json:"price"`             // Unit price, never negative.
	PhotoURL         string      `json:"photo_url"`         // Optional blob storage reference for the product photo.
	Description      string      `json:"description"`       // Optional free-form description.
	Categories       []*Category `json:"categories"`        // Categories the product is linked to.
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// LowStock reports whether the on-hand quantity has fallen to the critical threshold.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.CriticalQuantity
}

// Category groups catalog products; the link to products is many-to-many.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
