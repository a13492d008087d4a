package impl

import (
	"context"
	"testing"
	"time"

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

// vatServiceFixtures holds all test dependencies for vat service tests.
type vatServiceFixtures struct {
	service usecase.VatUsecase
	vatRepo *mockRepo.MockVatRateRepository
}

func createTestVatService(t *testing.T) vatServiceFixtures {
	vatRepo := mockRepo.NewMockVatRateRepository(t)
	service := NewVatService(vatRepo, newTestLogger())

	return vatServiceFixtures{
		service: service,
		vatRepo: vatRepo,
	}
}

func TestVatService_CreateRate_Success(t *testing.T) {
	fx := createTestVatService(t)

	ctx := context.Background()
	effectiveDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	fx.vatRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VatRate")).
		RunAndReturn(func(_ context.Context, rate *entity.VatRate) error {
			rate.ID = uuid.New()
			return nil
		})

	rate, err := fx.service.CreateRate(ctx, effectiveDate, 20)
	require.NoError(t, err)
	assert.Equal(t, effectiveDate, rate.EffectiveDate)
	assert.Equal(t, 20.0, rate.Percentage)
	assert.NotEqual(t, uuid.Nil, rate.ID)
}

func TestVatService_CreateRate_ZeroDate(t *testing.T) {
	fx := createTestVatService(t)

	_, err := fx.service.CreateRate(context.Background(), time.Time{}, 20)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVatService_CreateRate_PercentageOutOfRange(t *testing.T) {
	fx := createTestVatService(t)

	_, err := fx.service.CreateRate(context.Background(), time.Now(), 101)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.CreateRate(context.Background(), time.Now(), -1)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVatService_RateFor_PicksApplicableRate(t *testing.T) {
	fx := createTestVatService(t)

	ctx := context.Background()
	at := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	expected := &entity.VatRate{
		ID:            uuid.New(),
		EffectiveDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Percentage:    20,
	}

	fx.vatRepo.EXPECT().
		FindApplicable(ctx, at).
		Return(expected, nil)

	rate, err := fx.service.RateFor(ctx, at)
	require.NoError(t, err)
	assert.Equal(t, expected, rate)
}

func TestVatService_RateFor_NoneApplicable(t *testing.T) {
	fx := createTestVatService(t)

	ctx := context.Background()
	at := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	fx.vatRepo.EXPECT().
		FindApplicable(ctx, at).
		Return(nil, repository.ErrVatRateNotFound)

	_, err := fx.service.RateFor(ctx, at)
	assert.ErrorIs(t, err, domainerrors.ErrVatRateNotFound)
}

func TestVatService_ListRates(t *testing.T) {
	fx := createTestVatService(t)

	ctx := context.Background()
	expected := []*entity.VatRate{
		{ID: uuid.New(), EffectiveDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Percentage: 20},
		{ID: uuid.New(), EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Percentage: 18},
	}

	fx.vatRepo.EXPECT().
		List(ctx).
		Return(expected, nil)

	rates, err := fx.service.ListRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, rates)
}
