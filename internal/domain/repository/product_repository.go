// Package repository defines the persistence interfaces the workflows depend on.
package repository

import (
	"context"

	"retailpos/internal/domain/entity"
	"retailpos/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors shared by the repository implementations.
var (
	// ErrProductNotFound is returned when no product matches the lookup.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when no category matches the lookup.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInsufficientStock is returned when a conditional stock decrement
	// matches no row, i.e. the on-hand quantity is below the requested amount.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository is the data access gateway for the product catalog and
// its category links.
type ProductRepository interface {
	// Create persists a new product. A duplicate code surfaces as a domain
	// conflict error.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves one product with its categories preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByCode retrieves one product by its natural unique code.
	FindByCode(ctx context.Context, code string) (*entity.Product, error)

	// List retrieves the whole catalog with categories preloaded.
	List(ctx context.Context) ([]*entity.Product, error)

	// Update persists name, price, quantity, thresholds, photo and description
	// of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by id.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddQuantity atomically increments the on-hand quantity by delta on the
	// server side, so concurrent intakes cannot lose updates.
	AddQuantity(ctx context.Context, id uuid.UUID, delta int) error

	// DecrementQuantity atomically decrements the on-hand quantity by amount,
	// only when the current quantity is at least amount. A miss returns
	// ErrInsufficientStock (or ErrProductNotFound when the row is gone).
	DecrementQuantity(ctx context.Context, id uuid.UUID, amount int) error

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// AssignCategory links a product to a category; duplicate pairs conflict.
	AssignCategory(ctx context.Context, productID, categoryID uuid.UUID) error

	// UnassignCategory removes a product-category link.
	UnassignCategory(ctx context.Context, productID, categoryID uuid.UUID) error
}
