package impl

import (
	"context"
	"testing"

	"retailpos/internal/domain/entity"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/domain/repository"
	mockRepo "retailpos/internal/mocks/repository"
	"retailpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storeServiceFixtures holds all test dependencies for store service tests.
type storeServiceFixtures struct {
	service   usecase.StoreUsecase
	storeRepo *mockRepo.MockStoreRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewStoreService(storeRepo, userRepo, newTestLogger())

	return storeServiceFixtures{
		service:   service,
		storeRepo: storeRepo,
		userRepo:  userRepo,
	}
}

func TestStoreService_CreateStore_ReturnsFreshCollection(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		CreateStore(ctx, mock.AnythingOfType("*entity.Store")).
		RunAndReturn(func(_ context.Context, store *entity.Store) error {
			store.ID = storeID
			return nil
		})

	fx.storeRepo.EXPECT().
		ListStores(ctx).
		Return([]*entity.Store{{ID: storeID, Location: 3}}, nil)

	stores, err := fx.service.CreateStore(ctx, 3)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, storeID, stores[0].ID)
}

func TestStoreService_CreateStore_NegativeLocation(t *testing.T) {
	fx := createTestStoreService(t)

	_, err := fx.service.CreateStore(context.Background(), -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStoreService_AssignUser_ChecksUserFirst(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Dana"}, nil)

	fx.storeRepo.EXPECT().
		AssignUser(ctx, storeID, userID).
		Return(nil)

	fx.storeRepo.EXPECT().
		ListStores(ctx).
		Return([]*entity.Store{{ID: storeID, Users: []*entity.User{{ID: userID, Name: "Dana"}}}}, nil)

	stores, err := fx.service.AssignUser(ctx, storeID, userID)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	require.Len(t, stores[0].Users, 1)
	assert.Equal(t, userID, stores[0].Users[0].ID)
}

func TestStoreService_AssignUser_UnknownUser(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.AssignUser(ctx, uuid.New(), userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestStoreService_RemoveUser_LinkMissing(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()
	userID := uuid.New()

	fx.storeRepo.EXPECT().
		RemoveUser(ctx, storeID, userID).
		Return(repository.ErrStoreLinkNotFound)

	_, err := fx.service.RemoveUser(ctx, storeID, userID)
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrStoreNotFound.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "not assigned")
}

func TestStoreService_AddProduct_ReturnsFreshCollection(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()
	productID := uuid.New()

	fx.storeRepo.EXPECT().
		AddProduct(ctx, storeID, productID, 7).
		Return(nil)

	fx.storeRepo.EXPECT().
		ListStores(ctx).
		Return([]*entity.Store{{
			ID: storeID,
			Products: []*entity.StoreProduct{
				{StoreID: storeID, ProductID: productID, Quantity: 7},
			},
		}}, nil)

	stores, err := fx.service.AddProduct(ctx, storeID, productID, 7)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	require.Len(t, stores[0].Products, 1)
	assert.Equal(t, 7, stores[0].Products[0].Quantity)
}

func TestStoreService_AddProduct_NegativeQuantity(t *testing.T) {
	fx := createTestStoreService(t)

	_, err := fx.service.AddProduct(context.Background(), uuid.New(), uuid.New(), -1)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStoreService_UpdateProductQuantity_LinkMissing(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()
	productID := uuid.New()

	fx.storeRepo.EXPECT().
		UpdateProductQuantity(ctx, storeID, productID, 4).
		Return(repository.ErrStoreLinkNotFound)

	_, err := fx.service.UpdateProductQuantity(ctx, storeID, productID, 4)
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrStoreNotFound.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "not linked")
}

func TestStoreService_DeleteStore_NotFound(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		DeleteStore(ctx, storeID).
		Return(repository.ErrStoreNotFound)

	_, err := fx.service.DeleteStore(ctx, storeID)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_CreateUser_TrimsName(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = uuid.New()
			return nil
		})

	user, err := fx.service.CreateUser(ctx, "  Dana  ", "dana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Dana", user.Name)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestStoreService_CreateUser_EmptyName(t *testing.T) {
	fx := createTestStoreService(t)

	_, err := fx.service.CreateUser(context.Background(), "   ", "dana@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
