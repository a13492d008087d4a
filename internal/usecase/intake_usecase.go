package usecase

import (
	"context"

	"retailpos/internal/domain/entity"

	"github.com/google/uuid"
)

// IntakeUsecase defines the interface for stock intake
type IntakeUsecase interface {
	// AddStock increments the on-hand quantity of a product by amount. The
	// increment happens server-side in one statement, so concurrent intakes
	// never lose updates. Returns the refreshed product.
	AddStock(ctx context.Context, productID uuid.UUID, amount int) (*entity.Product, error)
}
