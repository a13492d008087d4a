// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"retailpos/internal/domain/entity"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/domain/repository"
	"retailpos/internal/domain/service"
	"retailpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	storage     service.PhotoStorage
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	storage service.PhotoStorage,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		storage:     storage,
		logger:      logger,
	}
}

// CreateProduct adds a new product; a duplicate code is a conflict.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product name must not be empty")
	}
	if strings.TrimSpace(input.Code) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product code must not be empty")
	}
	if input.Quantity < 0 || input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity and price must not be negative")
	}

	product := &entity.Product{
		Name:             strings.TrimSpace(input.Name),
		Code:             strings.TrimSpace(input.Code),
		Quantity:         input.Quantity,
		CriticalQuantity: input.CriticalQuantity,
		Price:            input.Price,
		Description:      input.Description,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("product created", "productID", product.ID, "code", product.Code)

	return product, nil
}

// UpdateProduct applies the non-nil fields of input to an existing product.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("product name must not be empty")
		}
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
		}
		product.Quantity = *input.Quantity
	}
	if input.CriticalQuantity != nil {
		product.CriticalQuantity = *input.CriticalQuantity
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
		}
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = *input.Description
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product and its stored photo, if any.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	if product.PhotoURL != "" {
		// The catalog row is already gone; a stale photo is an operational
		// nuisance, not a reason to fail the delete.
		if err := srv.storage.Delete(ctx, product.PhotoURL); err != nil {
			srv.logger.Warn("failed to delete product photo", "productID", id, "error", err)
		}
	}

	srv.logger.Info("product deleted", "productID", id)

	return nil
}

// GetProduct retrieves one product with its categories.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts retrieves the whole catalog with categories.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateCategory adds a new category.
func (srv *catalogService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category name must not be empty")
	}

	category := &entity.Category{Name: strings.TrimSpace(name)}
	if err := srv.productRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// ListCategories retrieves all categories.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// AssignCategory links a product to a category; a duplicate pair is a conflict.
func (srv *catalogService) AssignCategory(ctx context.Context, productID, categoryID uuid.UUID) error {
	if err := srv.productRepo.AssignCategory(ctx, productID, categoryID); err != nil {
		return errors.Wrap(err, "failed to assign category")
	}

	return nil
}

// UnassignCategory removes a product-category link.
func (srv *catalogService) UnassignCategory(ctx context.Context, productID, categoryID uuid.UUID) error {
	if err := srv.productRepo.UnassignCategory(ctx, productID, categoryID); err != nil {
		return errors.Wrap(err, "failed to unassign category")
	}

	return nil
}

// UploadPhoto validates and stores a product photo, then records its URL on
// the product. A previously stored photo is replaced.
func (srv *catalogService) UploadPhoto(ctx context.Context, productID uuid.UUID, filename string, payload []byte) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	photoURL, err := srv.storage.Upload(ctx, filename, payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload photo")
	}

	previousURL := product.PhotoURL
	product.PhotoURL = photoURL

	if err := srv.productRepo.Update(ctx, product); err != nil {
		// Undo the orphaned upload before surfacing the failure.
		if deleteErr := srv.storage.Delete(ctx, photoURL); deleteErr != nil {
			srv.logger.Warn("failed to delete orphaned photo", "key", photoURL, "error", deleteErr)
		}

		return nil, errors.Wrap(err, "failed to record photo URL")
	}

	if previousURL != "" && previousURL != photoURL {
		if err := srv.storage.Delete(ctx, previousURL); err != nil {
			srv.logger.Warn("failed to delete replaced photo", "url", previousURL, "error", err)
		}
	}

	srv.logger.Info("photo uploaded", "productID", productID, "url", photoURL)

	return product, nil
}

// DeletePhoto removes the stored photo and clears the product's photo URL.
func (srv *catalogService) DeletePhoto(ctx context.Context, productID uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}

	if product.PhotoURL == "" {
		return nil
	}

	if err := srv.storage.Delete(ctx, product.PhotoURL); err != nil {
		return errors.Wrap(err, "failed to delete photo")
	}

	product.PhotoURL = ""
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return errors.Wrap(err, "failed to clear photo URL")
	}

	return nil
}

// ListPhotos enumerates the objects currently held in the photo bucket.
func (srv *catalogService) ListPhotos(ctx context.Context) ([]service.StoredObject, error) {
	objects, err := srv.storage.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list photos")
	}

	return objects, nil
}
