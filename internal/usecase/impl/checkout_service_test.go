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

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service      usecase.CheckoutUsecase
	txManager    *mockRepo.MockTransactionManager
	productRepo  *mockRepo.MockProductRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	vatRepo      *mockRepo.MockVatRateRepository
	factory      *mockRepo.MockRepositoryFactory
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	vatRepo := mockRepo.NewMockVatRateRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCheckoutService(txManager, productRepo, purchaseRepo, vatRepo, newTestLogger())

	return checkoutServiceFixtures{
		service:      service,
		txManager:    txManager,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		vatRepo:      vatRepo,
		factory:      factory,
	}
}

// passThroughTransaction makes the transaction manager invoke the workflow
// function with the mock factory, as a committed transaction would.
func (fx checkoutServiceFixtures) passThroughTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestCheckoutService_AddToCart_ThenCheckout(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{
		ID:       productID,
		Name:     "Espresso Beans",
		Code:     "A1",
		Quantity: 10,
		Price:    5.00,
	}

	cart, err := fx.service.CreateCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.CartStateEmpty, cart.State)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	cart, err = fx.service.AddToCart(ctx, cart.ID, productID, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.CartStateBuilding, cart.State)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.InDelta(t, 5.00, cart.Lines[0].UnitPrice, 0.0001)
	assert.InDelta(t, 15.00, cart.Total(), 0.0001)

	fx.vatRepo.EXPECT().
		FindApplicable(ctx, mock.AnythingOfType("time.Time")).
		Return(&entity.VatRate{Percentage: 20}, nil)

	fx.passThroughTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewPurchaseRepository().Return(fx.purchaseRepo)

	fx.purchaseRepo.EXPECT().
		CreatePurchase(ctx, mock.AnythingOfType("*entity.Purchase")).
		RunAndReturn(func(_ context.Context, purchase *entity.Purchase) error {
			purchase.ID = uuid.New()
			return nil
		})

	fx.purchaseRepo.EXPECT().
		CreateLines(ctx, mock.AnythingOfType("[]*entity.PurchaseLine")).
		Return(nil)

	fx.productRepo.EXPECT().
		DecrementQuantity(ctx, productID, 3).
		Return(nil)

	purchase, err := fx.service.Checkout(ctx, cart.ID, entity.PaymentModeCard)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentModeCard, purchase.PaymentMode)
	assert.InDelta(t, 15.00, purchase.Total, 0.0001)
	assert.InDelta(t, 20, purchase.VatRate, 0.0001)
	require.Len(t, purchase.Lines, 1)
	assert.Equal(t, 3, purchase.Lines[0].Quantity)
	assert.InDelta(t, 5.00, purchase.Lines[0].UnitPrice, 0.0001)

	// committed checkout resets the cart
	cart, err = fx.service.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CartStateEmpty, cart.State)
	assert.Empty(t, cart.Lines)
}

func TestCheckoutService_AddToCart_OutOfStockRejected(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Filter Paper", Quantity: 0, Price: 1.25}, nil)

	cart, err := fx.service.CreateCart(ctx)
	require.NoError(t, err)

	_, err = fx.service.AddToCart(ctx, cart.ID, productID, 1)
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), appErr.ErrorCode())

	cart, err = fx.service.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestCheckoutService_AddToCart_MergedQuantityBoundedByStock(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Grinder", Quantity: 4, Price: 9.90}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil).Times(2)

	cart, err := fx.service.CreateCart(ctx)
	require.NoError(t, err)

	cart, err = fx.service.AddToCart(ctx, cart.ID, productID, 3)
	require.NoError(t, err)

	// 3 already in the cart, 2 more would exceed the 4 on hand
	_, err = fx.service.AddToCart(ctx, cart.ID, productID, 2)
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), appErr.ErrorCode())

	cart, err = fx.service.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
}

func TestCheckoutService_Checkout_StockDroppedMidway_RollsBack(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Espresso Beans", Quantity: 10, Price: 5.00}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	cart, err := fx.service.CreateCart(ctx)
	require.NoError(t, err)
	cart, err = fx.service.AddToCart(ctx, cart.ID, productID, 3)
	require.NoError(t, err)

	fx.vatRepo.EXPECT().
		FindApplicable(ctx, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrVatRateNotFound)

	fx.passThroughTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewPurchaseRepository().Return(fx.purchaseRepo)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	fx.purchaseRepo.EXPECT().
		CreatePurchase(ctx, mock.AnythingOfType("*entity.Purchase")).
		Return(nil)

	fx.purchaseRepo.EXPECT().
		CreateLines(ctx, mock.AnythingOfType("[]*entity.PurchaseLine")).
		Return(nil)

	// another till sold the last units between cart and commit
	fx.productRepo.EXPECT().
		DecrementQuantity(ctx, productID, 3).
		Return(repository.ErrInsufficientStock)

	_, err = fx.service.Checkout(ctx, cart.ID, entity.PaymentModeCash)
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), appErr.ErrorCode())

	// failed checkout leaves the cart intact for retry
	cart, err = fx.service.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, entity.CartStateBuilding, cart.State)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	cart, err := fx.service.CreateCart(ctx)
	require.NoError(t, err)

	_, err = fx.service.Checkout(ctx, cart.ID, entity.PaymentModeCash)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Checkout_InvalidPaymentMode(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	cart, err := fx.service.CreateCart(ctx)
	require.NoError(t, err)

	_, err = fx.service.Checkout(ctx, cart.ID, entity.PaymentMode("cheque"))
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCheckoutService_GetCart_NotFound(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.GetCart(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestCheckoutService_RemoveLine_EmptiesCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Grinder", Quantity: 4, Price: 9.90}, nil)

	cart, err := fx.service.CreateCart(ctx)
	require.NoError(t, err)
	cart, err = fx.service.AddToCart(ctx, cart.ID, productID, 2)
	require.NoError(t, err)

	cart, err = fx.service.RemoveLine(ctx, cart.ID, productID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, entity.CartStateEmpty, cart.State)
}

func TestCheckoutService_UpdateLineQuantity_RefreshesPrice(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Grinder", Quantity: 4, Price: 9.90}, nil).Once()

	cart, err := fx.service.CreateCart(ctx)
	require.NoError(t, err)
	cart, err = fx.service.AddToCart(ctx, cart.ID, productID, 2)
	require.NoError(t, err)

	// the catalog price changed between add and update
	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Grinder", Quantity: 4, Price: 12.50}, nil).Once()

	cart, err = fx.service.UpdateLineQuantity(ctx, cart.ID, productID, 4)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 4, cart.Lines[0].Quantity)
	assert.InDelta(t, 12.50, cart.Lines[0].UnitPrice, 0.0001)
}
