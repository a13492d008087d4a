package usecase

import (
	"context"

	"retailpos/internal/domain/entity"

	"github.com/google/uuid"
)

// StoreUsecase defines the interface for store and inventory assignment.
// Every mutation completes its write first, then re-fetches and returns the
// full store collection so callers always render fresh state.
type StoreUsecase interface {
	// CreateStore adds a store at the given location.
	CreateStore(ctx context.Context, location int) ([]*entity.Store, error)

	// GetStore retrieves one store with its users and products.
	GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error)

	// ListStores retrieves all stores with users and products.
	ListStores(ctx context.Context) ([]*entity.Store, error)

	// DeleteStore removes a store and its assignments.
	DeleteStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Store, error)

	// AssignUser links a user to a store.
	AssignUser(ctx context.Context, storeID, userID uuid.UUID) ([]*entity.Store, error)

	// RemoveUser removes a user from a store.
	RemoveUser(ctx context.Context, storeID, userID uuid.UUID) ([]*entity.Store, error)

	// AddProduct links a product to a store with a per-store quantity.
	AddProduct(ctx context.Context, storeID, productID uuid.UUID, quantity int) ([]*entity.Store, error)

	// UpdateProductQuantity replaces the per-store quantity of a linked product.
	UpdateProductQuantity(ctx context.Context, storeID, productID uuid.UUID, quantity int) ([]*entity.Store, error)

	// RemoveProduct removes a product from a store.
	RemoveProduct(ctx context.Context, storeID, productID uuid.UUID) ([]*entity.Store, error)

	// CreateUser adds a staff member who can be assigned to stores.
	CreateUser(ctx context.Context, name, email string) (*entity.User, error)

	// ListUsers retrieves all staff members.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
