package repository

import (
	"context"
	"time"

	"retailpos/internal/domain/entity"
	"retailpos/internal/errors"
)

// ErrVatRateNotFound is returned when no rate is effective for the instant.
var ErrVatRateNotFound = errors.New("vat rate not found")

// VatRateRepository persists VAT rates and resolves the applicable one.
type VatRateRepository interface {
	// Create persists a new rate; existing rates are never modified.
	Create(ctx context.Context, rate *entity.VatRate) error

	// List retrieves all rates, newest effective date first.
	List(ctx context.Context) ([]*entity.VatRate, error)

	// FindApplicable returns the most recent rate whose effective date is not
	// after the given instant.
	FindApplicable(ctx context.Context, at time.Time) (*entity.VatRate, error)
}
