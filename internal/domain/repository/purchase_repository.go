package repository

import (
	"context"

	"retailpos/internal/domain/entity"
	"retailpos/internal/errors"

	"github.com/google/uuid"
)

// ErrPurchaseNotFound is returned when no purchase matches the lookup.
var ErrPurchaseNotFound = errors.New("purchase not found")

// PurchaseRepository persists completed sales.
type PurchaseRepository interface {
	// CreatePurchase inserts the purchase header row only.
	CreatePurchase(ctx context.Context, purchase *entity.Purchase) error

	// CreateLines inserts all line items referencing an existing header.
	CreateLines(ctx context.Context, lines []*entity.PurchaseLine) error

	// FindByID retrieves one purchase with its lines preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)

	// List retrieves all purchases, newest first, lines preloaded.
	List(ctx context.Context) ([]*entity.Purchase, error)
}
