package impl

import (
	"context"
	"log/slog"
	"time"

	"retailpos/internal/domain/entity"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/domain/repository"
	"retailpos/internal/usecase"

	"github.com/pkg/errors"
)

// vatService implements the VatUsecase interface.
type vatService struct {
	vatRepo repository.VatRateRepository
	logger  *slog.Logger
}

// NewVatService is the constructor for vatService.
func NewVatService(
	vatRepo repository.VatRateRepository,
	logger *slog.Logger,
) usecase.VatUsecase {
	return &vatService{
		vatRepo: vatRepo,
		logger:  logger,
	}
}

// CreateRate records a VAT percentage effective from the given date.
func (srv *vatService) CreateRate(ctx context.Context, effectiveDate time.Time, percentage float64) (*entity.VatRate, error) {
	if effectiveDate.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("effective date is required")
	}
	if percentage < 0 || percentage > 100 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("percentage must be between 0 and 100")
	}

	rate := &entity.VatRate{
		EffectiveDate: effectiveDate,
		Percentage:    percentage,
	}
	if err := srv.vatRepo.Create(ctx, rate); err != nil {
		return nil, errors.Wrap(err, "failed to create vat rate")
	}

	srv.logger.Info("vat rate created", "effectiveDate", effectiveDate, "percentage", percentage)

	return rate, nil
}

// ListRates retrieves all rates, newest effective date first.
func (srv *vatService) ListRates(ctx context.Context) ([]*entity.VatRate, error) {
	rates, err := srv.vatRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vat rates")
	}

	return rates, nil
}

// RateFor returns the rate applicable at the given instant.
func (srv *vatService) RateFor(ctx context.Context, at time.Time) (*entity.VatRate, error) {
	rate, err := srv.vatRepo.FindApplicable(ctx, at)
	if err != nil {
		if errors.Is(err, repository.ErrVatRateNotFound) {
			return nil, domainerrors.ErrVatRateNotFound
		}

		return nil, errors.Wrap(err, "failed to find applicable vat rate")
	}

	return rate, nil
}
