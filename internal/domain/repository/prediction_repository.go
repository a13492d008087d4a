package repository

import (
	"context"

	"retailpos/internal/domain/entity"

	"github.com/google/uuid"
)

// PredictionRepository persists the append-only price/sales history written
// by spreadsheet imports.
type PredictionRepository interface {
	// Append inserts one history row. History rows are never updated.
	Append(ctx context.Context, prediction *entity.PricePrediction) error

	// FindByProduct retrieves the history of one product, oldest first.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.PricePrediction, error)
}
