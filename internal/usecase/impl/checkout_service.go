package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"retailpos/internal/domain/entity"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/domain/repository"
	"retailpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface. It owns the
// in-memory cart registry; carts never touch the database.
type checkoutService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	vatRepo      repository.VatRateRepository
	logger       *slog.Logger

	mu    sync.Mutex
	carts map[uuid.UUID]*entity.Cart
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	txManager repository.TransactionManager,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	vatRepo repository.VatRateRepository,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:    txManager,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		vatRepo:      vatRepo,
		logger:       logger,
		carts:        make(map[uuid.UUID]*entity.Cart),
	}
}

// CreateCart opens a fresh empty cart and returns it.
func (srv *checkoutService) CreateCart(_ context.Context) (*entity.Cart, error) {
	cart := entity.NewCart()

	srv.mu.Lock()
	srv.carts[cart.ID] = cart
	srv.mu.Unlock()

	srv.logger.Debug("cart created", "cartID", cart.ID)

	return cloneCart(cart), nil
}

// GetCart retrieves a cart by id.
func (srv *checkoutService) GetCart(_ context.Context, cartID uuid.UUID) (*entity.Cart, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart, ok := srv.carts[cartID]
	if !ok {
		return nil, domainerrors.ErrCartNotFound
	}

	return cloneCart(cart), nil
}

// AddToCart adds quantity of a product to the cart, merging with an existing
// line. The live stock bounds the merged quantity; a rejected add leaves the
// cart exactly as it was.
func (srv *checkoutService) AddToCart(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	}

	product, err := srv.loadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Quantity == 0 {
		return nil, domainerrors.ErrInsufficientStock.WithDetails(
			fmt.Sprintf("product %s is out of stock", product.Name))
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart, ok := srv.carts[cartID]
	if !ok {
		return nil, domainerrors.ErrCartNotFound
	}

	requested := quantity
	if line := cart.Line(productID); line != nil {
		requested += line.Quantity
	}
	if requested > product.Quantity {
		return nil, domainerrors.ErrInsufficientStock.WithDetails(
			fmt.Sprintf("requested %d of %s, only %d on hand", requested, product.Name, product.Quantity))
	}

	if line := cart.Line(productID); line != nil {
		line.Quantity = requested
		line.UnitPrice = product.Price
	} else {
		cart.Lines = append(cart.Lines, &entity.CartLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			UnitPrice:   product.Price,
		})
	}
	cart.State = entity.CartStateBuilding

	return cloneCart(cart), nil
}

// UpdateLineQuantity replaces the quantity of an existing cart line.
func (srv *checkoutService) UpdateLineQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive, remove the line instead")
	}

	product, err := srv.loadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.Quantity {
		return nil, domainerrors.ErrInsufficientStock.WithDetails(
			fmt.Sprintf("requested %d of %s, only %d on hand", quantity, product.Name, product.Quantity))
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart, ok := srv.carts[cartID]
	if !ok {
		return nil, domainerrors.ErrCartNotFound
	}

	line := cart.Line(productID)
	if line == nil {
		return nil, domainerrors.ErrProductNotFound.WithDetails("product is not in the cart")
	}

	line.Quantity = quantity
	line.UnitPrice = product.Price

	return cloneCart(cart), nil
}

// RemoveLine drops a product from the cart.
func (srv *checkoutService) RemoveLine(_ context.Context, cartID, productID uuid.UUID) (*entity.Cart, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart, ok := srv.carts[cartID]
	if !ok {
		return nil, domainerrors.ErrCartNotFound
	}

	kept := cart.Lines[:0]
	removed := false
	for _, line := range cart.Lines {
		if line.ProductID == productID {
			removed = true

			continue
		}
		kept = append(kept, line)
	}
	if !removed {
		return nil, domainerrors.ErrProductNotFound.WithDetails("product is not in the cart")
	}

	cart.Lines = kept
	if len(cart.Lines) == 0 {
		cart.State = entity.CartStateEmpty
	}

	return cloneCart(cart), nil
}

// Checkout commits the cart in one transaction. The purchase header, every
// line and every conditional stock decrement land together or roll back
// together; a cart whose checkout failed is left intact for retry.
func (srv *checkoutService) Checkout(ctx context.Context, cartID uuid.UUID, paymentMode entity.PaymentMode) (*entity.Purchase, error) {
	if !paymentMode.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unsupported payment mode %q", paymentMode))
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart, ok := srv.carts[cartID]
	if !ok {
		return nil, domainerrors.ErrCartNotFound
	}
	if len(cart.Lines) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	now := time.Now()
	vatRate, err := srv.applicableVatRate(ctx, now)
	if err != nil {
		return nil, err
	}

	var purchase *entity.Purchase

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		purchaseRepo := repoFactory.NewPurchaseRepository()

		// Snapshot the then-current price of every product before writing
		// anything; the cart's add-time prices may be stale.
		lines := make([]*entity.PurchaseLine, 0, len(cart.Lines))
		var total float64

		for _, cartLine := range cart.Lines {
			product, err := productRepo.FindByID(ctx, cartLine.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WithDetails(
						fmt.Sprintf("product %s left the catalog before checkout", cartLine.ProductName))
				}

				return errors.Wrap(err, "failed to re-read product")
			}

			lines = append(lines, &entity.PurchaseLine{
				ProductID: product.ID,
				Quantity:  cartLine.Quantity,
				UnitPrice: product.Price,
			})
			total += float64(cartLine.Quantity) * product.Price
		}

		purchase = &entity.Purchase{
			PaymentMode: paymentMode,
			Total:       total,
			VatRate:     vatRate,
			CreatedAt:   now,
		}
		if err := purchaseRepo.CreatePurchase(ctx, purchase); err != nil {
			return errors.Wrap(err, "failed to create purchase")
		}

		for _, line := range lines {
			line.PurchaseID = purchase.ID
		}
		if err := purchaseRepo.CreateLines(ctx, lines); err != nil {
			return errors.Wrap(err, "failed to create purchase lines")
		}
		purchase.Lines = lines

		for i, line := range lines {
			if err := productRepo.DecrementQuantity(ctx, line.ProductID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WithDetails(
						fmt.Sprintf("stock of %s dropped below %d during checkout",
							cart.Lines[i].ProductName, line.Quantity))
				}
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WithDetails(
						fmt.Sprintf("product %s left the catalog before checkout", cart.Lines[i].ProductName))
				}

				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("checkout failed", "cartID", cartID, "error", err)

		return nil, err
	}

	cart.State = entity.CartStateCommitted
	cart.Reset()

	srv.logger.Info("checkout committed",
		"cartID", cartID,
		"purchaseID", purchase.ID,
		"total", purchase.Total,
		"paymentMode", paymentMode)

	return purchase, nil
}

// GetPurchase retrieves one completed purchase with its lines.
func (srv *checkoutService) GetPurchase(ctx context.Context, purchaseID uuid.UUID) (*entity.Purchase, error) {
	purchase, err := srv.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return nil, domainerrors.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase")
	}

	return purchase, nil
}

// ListPurchases retrieves all completed purchases, newest first.
func (srv *checkoutService) ListPurchases(ctx context.Context) ([]*entity.Purchase, error) {
	purchases, err := srv.purchaseRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return purchases, nil
}

func (srv *checkoutService) loadProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// applicableVatRate resolves the percentage to stamp on a purchase. A shop
// with no configured rates sells VAT-free rather than not at all.
func (srv *checkoutService) applicableVatRate(ctx context.Context, at time.Time) (float64, error) {
	rate, err := srv.vatRepo.FindApplicable(ctx, at)
	if err != nil {
		if errors.Is(err, repository.ErrVatRateNotFound) {
			srv.logger.Warn("no VAT rate configured, recording zero", "at", at)

			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to resolve VAT rate")
	}

	return rate.Percentage, nil
}

// cloneCart returns a snapshot safe to hand outside the registry lock.
func cloneCart(cart *entity.Cart) *entity.Cart {
	lines := make([]*entity.CartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		copied := *line
		lines = append(lines, &copied)
	}

	return &entity.Cart{
		ID:        cart.ID,
		State:     cart.State,
		Lines:     lines,
		CreatedAt: cart.CreatedAt,
	}
}
