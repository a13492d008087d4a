package repository

import (
	"context"

	"retailpos/internal/domain/entity"
	"retailpos/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrStoreNotFound is returned when no store matches the lookup.
	ErrStoreNotFound = errors.New("store not found")
	// ErrStoreLinkNotFound is returned when a user or product link to remove
	// does not exist on the store.
	ErrStoreLinkNotFound = errors.New("store link not found")
)

// StoreRepository manages stores and their two many-to-many link tables:
// store-user assignments and per-store product stock.
type StoreRepository interface {
	// CreateStore persists a new store.
	CreateStore(ctx context.Context, store *entity.Store) error

	// FindStoreByID retrieves one store with users and products preloaded.
	FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// ListStores retrieves all stores with users and products preloaded. The
	// denormalized joined view is always produced by a fresh read.
	ListStores(ctx context.Context) ([]*entity.Store, error)

	// DeleteStore removes a store and its link rows.
	DeleteStore(ctx context.Context, id uuid.UUID) error

	// AssignUser links a user to a store.
	AssignUser(ctx context.Context, storeID, userID uuid.UUID) error

	// RemoveUser removes a store-user link.
	RemoveUser(ctx context.Context, storeID, userID uuid.UUID) error

	// AddProduct links a product to a store with an initial quantity.
	AddProduct(ctx context.Context, storeID, productID uuid.UUID, quantity int) error

	// UpdateProductQuantity replaces the per-store quantity of a linked product.
	UpdateProductQuantity(ctx context.Context, storeID, productID uuid.UUID, quantity int) error

	// RemoveProduct removes a store-product link.
	RemoveProduct(ctx context.Context, storeID, productID uuid.UUID) error
}
