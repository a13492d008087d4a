package impl

import (
	"context"
	"log/slog"

	"retailpos/internal/domain/entity"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/domain/repository"
	"retailpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// intakeService implements the IntakeUsecase interface.
type intakeService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewIntakeService is the constructor for intakeService.
func NewIntakeService(
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.IntakeUsecase {
	return &intakeService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// AddStock increments the on-hand quantity of a product. The increment is one
// server-side UPDATE, so two clerks booking intake for the same product at the
// same time both land.
func (srv *intakeService) AddStock(ctx context.Context, productID uuid.UUID, amount int) (*entity.Product, error) {
	if amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("intake amount must be positive")
	}

	if err := srv.productRepo.AddQuantity(ctx, productID, amount); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to add stock")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload product after intake")
	}

	srv.logger.Info("stock added", "productID", productID, "amount", amount, "quantity", product.Quantity)
	if product.LowStock() {
		srv.logger.Warn("product still at or below critical quantity",
			"productID", productID, "quantity", product.Quantity, "critical", product.CriticalQuantity)
	}

	return product, nil
}
