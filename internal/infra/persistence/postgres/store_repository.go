package postgres

import (
	"context"

	"retailpos/internal/domain/entity"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/domain/repository"
	"retailpos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// CreateStore persists a new store.
func (repo *storeRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Omit("Users", "Products").Create(storeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindStoreByID retrieves one store with users and products preloaded.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Preload("Users").
		Preload("Products.Product").
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// ListStores retrieves all stores with users and products preloaded.
func (repo *storeRepository) ListStores(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Preload("Users").
		Preload("Products.Product").
		Order("location ASC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// DeleteStore removes a store and its link rows.
func (repo *storeRepository) DeleteStore(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_model_id = ?", id).Delete(&model.StoreUserModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete store user links")
		}
		if err := tx.Where("store_id = ?", id).Delete(&model.StoreProductModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete store product links")
		}

		result := tx.Where("id = ?", id).Delete(&model.StoreModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete store")
		}
		if result.RowsAffected == 0 {
			return repository.ErrStoreNotFound
		}

		return nil
	})

	return err
}

// AssignUser links a user to a store.
func (repo *storeRepository) AssignUser(ctx context.Context, storeID, userID uuid.UUID) error {
	link := &model.StoreUserModel{
		StoreModelID: storeID,
		UserModelID:  userID,
	}

	if err := repo.db.WithContext(ctx).Create(link).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// The pair already exists; assignment is idempotent.
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign user to store")
	}

	return nil
}

// RemoveUser removes a store-user link.
func (repo *storeRepository) RemoveUser(ctx context.Context, storeID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("store_model_id = ? AND user_model_id = ?", storeID, userID).
		Delete(&model.StoreUserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove user from store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreLinkNotFound
	}

	return nil
}

// AddProduct links a product to a store with an initial quantity.
func (repo *storeRepository) AddProduct(ctx context.Context, storeID, productID uuid.UUID, quantity int) error {
	link := &model.StoreProductModel{
		StoreID:   storeID,
		ProductID: productID,
		Quantity:  quantity,
	}

	if err := repo.db.WithContext(ctx).Create(link).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Already linked; replace the quantity instead.
			return repo.UpdateProductQuantity(ctx, storeID, productID, quantity)
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add product to store")
	}

	return nil
}

// UpdateProductQuantity replaces the per-store quantity of a linked product.
func (repo *storeRepository) UpdateProductQuantity(ctx context.Context, storeID, productID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreProductModel{}).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		Update("quantity", quantity)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store product quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreLinkNotFound
	}

	return nil
}

// RemoveProduct removes a store-product link.
func (repo *storeRepository) RemoveProduct(ctx context.Context, storeID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		Delete(&model.StoreProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove product from store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreLinkNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	users := make([]*entity.User, 0, len(data.Users))
	for _, userM := range data.Users {
		users = append(users, toUserDomain(userM))
	}

	products := make([]*entity.StoreProduct, 0, len(data.Products))
	for _, linkM := range data.Products {
		products = append(products, &entity.StoreProduct{
			StoreID:   linkM.StoreID,
			ProductID: linkM.ProductID,
			Product:   toProductDomain(linkM.Product),
			Quantity:  linkM.Quantity,
		})
	}

	return &entity.Store{
		ID:        data.ID,
		Location:  data.Location,
		Users:     users,
		Products:  products,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:       data.ID,
		Location: data.Location,
	}
}
