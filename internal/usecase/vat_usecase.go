package usecase

import (
	"context"
	"time"

	"retailpos/internal/domain/entity"
)

// VatUsecase defines the interface for VAT rate maintenance and lookup
type VatUsecase interface {
	// CreateRate records a VAT percentage effective from the given date.
	CreateRate(ctx context.Context, effectiveDate time.Time, percentage float64) (*entity.VatRate, error)

	// ListRates retrieves all rates, newest effective date first.
	ListRates(ctx context.Context) ([]*entity.VatRate, error)

	// RateFor returns the rate applicable at the given instant: the most
	// recent rate whose effective date is not after it.
	RateFor(ctx context.Context, at time.Time) (*entity.VatRate, error)
}
