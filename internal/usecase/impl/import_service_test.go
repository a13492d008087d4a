package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"retailpos/internal/domain/entity"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/domain/repository"
	"retailpos/internal/domain/service"
	mockRepo "retailpos/internal/mocks/repository"
	mockService "retailpos/internal/mocks/service"
	"retailpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// importServiceFixtures holds all test dependencies for import service tests.
type importServiceFixtures struct {
	service        usecase.ImportUsecase
	txManager      *mockRepo.MockTransactionManager
	productRepo    *mockRepo.MockProductRepository
	predictionRepo *mockRepo.MockPredictionRepository
	parser         *mockService.MockWorkbookParser
	factory        *mockRepo.MockRepositoryFactory
}

func createTestImportService(t *testing.T) importServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	predictionRepo := mockRepo.NewMockPredictionRepository(t)
	parser := mockService.NewMockWorkbookParser(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewImportService(txManager, predictionRepo, parser, 1000, newTestLogger())

	return importServiceFixtures{
		service:        service,
		txManager:      txManager,
		productRepo:    productRepo,
		predictionRepo: predictionRepo,
		parser:         parser,
		factory:        factory,
	}
}

func (fx importServiceFixtures) passThroughTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewPredictionRepository().Return(fx.predictionRepo)
}

func importDate() time.Time {
	return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
}

func TestImportService_ImportRows_CreatesAndUpdates(t *testing.T) {
	fx := createTestImportService(t)

	ctx := context.Background()
	existingID := uuid.New()

	rows := []usecase.ImportRow{
		{RowNumber: 2, Name: "Espresso Beans", Code: "A1", Quantity: 20, CriticalQuantity: 2, Price: 5.50, SalesCount: 3, Date: importDate()},
		{RowNumber: 3, Name: "Filter Paper", Code: "B2", Quantity: 40, CriticalQuantity: 5, Price: 1.25, SalesCount: 12, Date: importDate()},
	}

	fx.passThroughTransaction(ctx)

	// A1 exists, gets updated in place
	fx.productRepo.EXPECT().
		FindByCode(ctx, "A1").
		Return(&entity.Product{ID: existingID, Name: "Espresso Beans", Code: "A1", Quantity: 10, Price: 5.00}, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	// B2 is new
	fx.productRepo.EXPECT().
		FindByCode(ctx, "B2").
		Return(nil, repository.ErrProductNotFound)
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			product.ID = uuid.New()
			return nil
		})

	fx.predictionRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.PricePrediction")).
		Return(nil).Times(2)

	summary, err := fx.service.ImportRows(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 2, summary.Predictions)
}

func TestImportService_ImportRows_ValidationNamesBadRows(t *testing.T) {
	fx := createTestImportService(t)

	rows := []usecase.ImportRow{
		{RowNumber: 2, Name: "Espresso Beans", Code: "A1", Quantity: 20, Price: 5.50, Date: importDate()},
		{RowNumber: 3, Name: "", Code: "B2", Quantity: 40, Price: 1.25, Date: importDate()},
		{RowNumber: 4, Name: "Grinder", Code: "C3", Quantity: -1, Price: 9.90, Date: importDate()},
	}

	_, err := fx.service.ImportRows(context.Background(), rows)
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "row 3")
	assert.Contains(t, appErr.Details(), "row 4")
}

func TestImportService_ImportRows_MidBatchFailureRollsBack(t *testing.T) {
	fx := createTestImportService(t)

	ctx := context.Background()
	rows := []usecase.ImportRow{
		{RowNumber: 2, Name: "Espresso Beans", Code: "A1", Quantity: 20, Price: 5.50, Date: importDate()},
		{RowNumber: 3, Name: "Filter Paper", Code: "B2", Quantity: 40, Price: 1.25, Date: importDate()},
	}

	fx.passThroughTransaction(ctx)

	fx.productRepo.EXPECT().
		FindByCode(ctx, "A1").
		Return(nil, repository.ErrProductNotFound)
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)
	fx.predictionRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.PricePrediction")).
		Return(nil)

	// second row blows up, the transaction fn propagates the error
	fx.productRepo.EXPECT().
		FindByCode(ctx, "B2").
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "connection lost"))

	_, err := fx.service.ImportRows(ctx, rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find product B2")
}

func TestImportService_ImportRows_TooManyRows(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	predictionRepo := mockRepo.NewMockPredictionRepository(t)
	parser := mockService.NewMockWorkbookParser(t)
	service := NewImportService(txManager, predictionRepo, parser, 1, newTestLogger())

	rows := []usecase.ImportRow{
		{RowNumber: 2, Name: "Espresso Beans", Code: "A1", Quantity: 20, Price: 5.50, Date: importDate()},
		{RowNumber: 3, Name: "Filter Paper", Code: "B2", Quantity: 40, Price: 1.25, Date: importDate()},
	}

	_, err := service.ImportRows(context.Background(), rows)
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestImportService_ImportWorkbook_ParseFailureRejectsBatch(t *testing.T) {
	fx := createTestImportService(t)

	reader := strings.NewReader("not a workbook")
	fx.parser.EXPECT().
		Parse(reader).
		Return(nil, assert.AnError)

	_, err := fx.service.ImportWorkbook(context.Background(), reader)
	require.Error(t, err)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestImportService_ImportWorkbook_AppliesParsedRows(t *testing.T) {
	fx := createTestImportService(t)

	ctx := context.Background()
	reader := strings.NewReader("workbook bytes")

	fx.parser.EXPECT().
		Parse(reader).
		Return([]service.WorkbookRow{
			{RowNumber: 2, Name: "Espresso Beans", Code: "A1", Quantity: 20, CriticalQuantity: 2, Price: 5.50, SalesCount: 3, Date: importDate()},
		}, nil)

	fx.passThroughTransaction(ctx)

	fx.productRepo.EXPECT().
		FindByCode(ctx, "A1").
		Return(nil, repository.ErrProductNotFound)
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)
	fx.predictionRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.PricePrediction")).
		Return(nil)

	summary, err := fx.service.ImportWorkbook(ctx, reader)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Predictions)
}

func TestImportService_PredictionHistory(t *testing.T) {
	fx := createTestImportService(t)

	ctx := context.Background()
	productID := uuid.New()
	expected := []*entity.PricePrediction{
		{ID: uuid.New(), ProductID: productID, Date: importDate(), Price: 5.50, SalesCount: 3},
	}

	fx.predictionRepo.EXPECT().
		FindByProduct(ctx, productID).
		Return(expected, nil)

	predictions, err := fx.service.PredictionHistory(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, expected, predictions)
}
