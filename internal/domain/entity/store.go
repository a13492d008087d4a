package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is one physical retail location.
type Store struct {
	ID        uuid.UUID       `json:"id"`
	Location  int             `json:"location"` // Numeric location identifier of the branch.
	Users     []*User         `json:"users"`    // Staff assigned to the store.
	Products  []*StoreProduct `json:"products"` // Per-store stock, independent of the global product quantity.
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StoreProduct links a product to a store with the quantity held at that store.
type StoreProduct struct {
	StoreID   uuid.UUID `json:"store_id"`
	ProductID uuid.UUID `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
}
