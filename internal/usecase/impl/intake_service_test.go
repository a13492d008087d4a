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
	"github.com/stretchr/testify/require"
)

// intakeServiceFixtures holds all test dependencies for intake service tests.
type intakeServiceFixtures struct {
	service     usecase.IntakeUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestIntakeService(t *testing.T) intakeServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewIntakeService(productRepo, newTestLogger())

	return intakeServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestIntakeService_AddStock_Success(t *testing.T) {
	fx := createTestIntakeService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		AddQuantity(ctx, productID, 5).
		Return(nil)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Espresso Beans", Quantity: 15, CriticalQuantity: 2}, nil)

	product, err := fx.service.AddStock(ctx, productID, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, product.Quantity)
}

func TestIntakeService_AddStock_ZeroAmount(t *testing.T) {
	fx := createTestIntakeService(t)

	_, err := fx.service.AddStock(context.Background(), uuid.New(), 0)
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestIntakeService_AddStock_NegativeAmount(t *testing.T) {
	fx := createTestIntakeService(t)

	_, err := fx.service.AddStock(context.Background(), uuid.New(), -3)
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestIntakeService_AddStock_UnknownProduct(t *testing.T) {
	fx := createTestIntakeService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		AddQuantity(ctx, productID, 5).
		Return(repository.ErrProductNotFound)

	_, err := fx.service.AddStock(ctx, productID, 5)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
