package impl

import (
	"context"
	"log/slog"
	"strings"

	"retailpos/internal/domain/entity"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/domain/repository"
	"retailpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// storeService implements the StoreUsecase interface. Every mutation awaits
// its link write, then re-fetches the whole store collection so callers always
// see fresh state.
type storeService struct {
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		storeRepo: storeRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// CreateStore adds a store at the given location.
func (srv *storeService) CreateStore(ctx context.Context, location int) ([]*entity.Store, error) {
	if location < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("location must not be negative")
	}

	store := &entity.Store{Location: location}
	if err := srv.storeRepo.CreateStore(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.logger.Info("store created", "storeID", store.ID, "location", location)

	return srv.refetch(ctx)
}

// GetStore retrieves one store with its users and products.
func (srv *storeService) GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

// ListStores retrieves all stores with users and products.
func (srv *storeService) ListStores(ctx context.Context) ([]*entity.Store, error) {
	return srv.refetch(ctx)
}

// DeleteStore removes a store and its assignments.
func (srv *storeService) DeleteStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Store, error) {
	if err := srv.storeRepo.DeleteStore(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to delete store")
	}

	srv.logger.Info("store deleted", "storeID", storeID)

	return srv.refetch(ctx)
}

// AssignUser links a user to a store.
func (srv *storeService) AssignUser(ctx context.Context, storeID, userID uuid.UUID) ([]*entity.Store, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if err := srv.storeRepo.AssignUser(ctx, storeID, userID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to assign user")
	}

	return srv.refetch(ctx)
}

// RemoveUser removes a user from a store.
func (srv *storeService) RemoveUser(ctx context.Context, storeID, userID uuid.UUID) ([]*entity.Store, error) {
	if err := srv.storeRepo.RemoveUser(ctx, storeID, userID); err != nil {
		if errors.Is(err, repository.ErrStoreLinkNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WithDetails("user is not assigned to this store")
		}

		return nil, errors.Wrap(err, "failed to remove user")
	}

	return srv.refetch(ctx)
}

// AddProduct links a product to a store with a per-store quantity.
func (srv *storeService) AddProduct(ctx context.Context, storeID, productID uuid.UUID, quantity int) ([]*entity.Store, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	if err := srv.storeRepo.AddProduct(ctx, storeID, productID, quantity); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to add product to store")
	}

	return srv.refetch(ctx)
}

// UpdateProductQuantity replaces the per-store quantity of a linked product.
func (srv *storeService) UpdateProductQuantity(ctx context.Context, storeID, productID uuid.UUID, quantity int) ([]*entity.Store, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	if err := srv.storeRepo.UpdateProductQuantity(ctx, storeID, productID, quantity); err != nil {
		if errors.Is(err, repository.ErrStoreLinkNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WithDetails("product is not linked to this store")
		}

		return nil, errors.Wrap(err, "failed to update store product quantity")
	}

	return srv.refetch(ctx)
}

// RemoveProduct removes a product from a store.
func (srv *storeService) RemoveProduct(ctx context.Context, storeID, productID uuid.UUID) ([]*entity.Store, error) {
	if err := srv.storeRepo.RemoveProduct(ctx, storeID, productID); err != nil {
		if errors.Is(err, repository.ErrStoreLinkNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WithDetails("product is not linked to this store")
		}

		return nil, errors.Wrap(err, "failed to remove product from store")
	}

	return srv.refetch(ctx)
}

// CreateUser adds a staff member who can be assigned to stores.
func (srv *storeService) CreateUser(ctx context.Context, name, email string) (*entity.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user name must not be empty")
	}

	user := &entity.User{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

// ListUsers retrieves all staff members.
func (srv *storeService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *storeService) refetch(ctx context.Context) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.ListStores(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}
