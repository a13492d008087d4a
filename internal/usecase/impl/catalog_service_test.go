package impl

import (
	"context"
	"testing"

	"retailpos/internal/domain/entity"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/domain/repository"
	mockRepo "retailpos/internal/mocks/repository"
	mockService "retailpos/internal/mocks/service"
	"retailpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	storage     *mockService.MockPhotoStorage
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	storage := mockService.NewMockPhotoStorage(t)
	service := NewCatalogService(productRepo, storage, newTestLogger())

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
		storage:     storage,
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		Name:             "Espresso Beans",
		Code:             "A1",
		Quantity:         10,
		CriticalQuantity: 2,
		Price:            5.00,
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			product.ID = uuid.New()
			return nil
		})

	product, err := fx.service.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Espresso Beans", product.Name)
	assert.Equal(t, "A1", product.Code)
	assert.Equal(t, 10, product.Quantity)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestCatalogService_CreateProduct_EmptyName(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateProduct(context.Background(), &usecase.ProductInput{Code: "A1"})
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_CreateProduct_NegativePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateProduct(context.Background(), &usecase.ProductInput{
		Name:  "Espresso Beans",
		Code:  "A1",
		Price: -1,
	})
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_UpdateProduct_PartialFields(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	existing := &entity.Product{
		ID:       productID,
		Name:     "Espresso Beans",
		Code:     "A1",
		Quantity: 10,
		Price:    5.00,
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(existing, nil)

	newPrice := 6.50
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{Price: &newPrice})
	require.NoError(t, err)
	assert.InDelta(t, 6.50, product.Price, 0.0001)
	assert.Equal(t, "Espresso Beans", product.Name)
	assert.Equal(t, 10, product.Quantity)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_DeleteProduct_RemovesPhoto(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, PhotoURL: "https://cdn.example.com/photos/beans.png"}, nil)

	fx.productRepo.EXPECT().
		Delete(ctx, productID).
		Return(nil)

	fx.storage.EXPECT().
		Delete(ctx, "https://cdn.example.com/photos/beans.png").
		Return(nil)

	err := fx.service.DeleteProduct(ctx, productID)
	require.NoError(t, err)
}

func TestCatalogService_UploadPhoto_RecordsURL(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	payload := []byte{0x89, 'P', 'N', 'G'}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Espresso Beans"}, nil)

	fx.storage.EXPECT().
		Upload(ctx, "beans.png", payload).
		Return("https://cdn.example.com/photos/beans-abc.png", nil)

	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.UploadPhoto(ctx, productID, "beans.png", payload)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photos/beans-abc.png", product.PhotoURL)
}

func TestCatalogService_UploadPhoto_StorageFailure(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	payload := []byte("not an image")

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)

	fx.storage.EXPECT().
		Upload(ctx, "notes.txt", payload).
		Return("", domainerrors.ErrValidationFailed.WithDetails("unsupported content type"))

	_, err := fx.service.UploadPhoto(ctx, productID, "notes.txt", payload)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_AssignCategory_DuplicatePair(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	categoryID := uuid.New()

	fx.productRepo.EXPECT().
		AssignCategory(ctx, productID, categoryID).
		Return(domainerrors.ErrDuplicateCategoryLink)

	err := fx.service.AssignCategory(ctx, productID, categoryID)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateCategoryLink)
}

func TestCatalogService_ListProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	expected := []*entity.Product{
		{ID: uuid.New(), Name: "Espresso Beans", Code: "A1"},
		{ID: uuid.New(), Name: "Filter Paper", Code: "B2"},
	}

	fx.productRepo.EXPECT().
		List(ctx).
		Return(expected, nil)

	products, err := fx.service.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, products)
}
