// Package usecase defines the application workflow interfaces and their DTOs.
package usecase

import (
	"context"

	"retailpos/internal/domain/entity"
	"retailpos/internal/domain/service"

	"github.com/google/uuid"
)

// ProductInput carries the fields needed to create a catalog product.
type ProductInput struct {
	Name             string  `json:"name" validate:"required"`
	Code             string  `json:"code" validate:"required"`
	Quantity         int     `json:"quantity" validate:"gte=0"`
	CriticalQuantity int     `json:"critical_quantity" validate:"gte=0"`
	Price            float64 `json:"price" validate:"gte=0"`
	Description      string  `json:"description"`
}

// UpdateProductInput carries optional field updates; nil fields are untouched.
type UpdateProductInput struct {
	Name             *string  `json:"name,omitempty"`
	Quantity         *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	CriticalQuantity *int     `json:"critical_quantity,omitempty" validate:"omitempty,gte=0"`
	Price            *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Description      *string  `json:"description,omitempty"`
}

// CatalogUsecase defines the interface for product catalog management
type CatalogUsecase interface {
	// CreateProduct adds a new product; a duplicate code is a conflict.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// UpdateProduct applies the non-nil fields of input to an existing product.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product and its stored photo, if any.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// GetProduct retrieves one product with its categories.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves the whole catalog with categories.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// CreateCategory adds a new category.
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// AssignCategory links a product to a category; a duplicate pair is a conflict.
	AssignCategory(ctx context.Context, productID, categoryID uuid.UUID) error

	// UnassignCategory removes a product-category link.
	UnassignCategory(ctx context.Context, productID, categoryID uuid.UUID) error

	// UploadPhoto validates and stores a product photo, then records its URL
	// on the product.
	UploadPhoto(ctx context.Context, productID uuid.UUID, filename string, payload []byte) (*entity.Product, error)

	// DeletePhoto removes the stored photo and clears the product's photo URL.
	DeletePhoto(ctx context.Context, productID uuid.UUID) error

	// ListPhotos enumerates the objects currently held in the photo bucket.
	ListPhotos(ctx context.Context) ([]service.StoredObject, error)
}
