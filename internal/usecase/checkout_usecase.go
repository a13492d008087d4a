package usecase

import (
	"context"

	"retailpos/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutUsecase defines the interface for cart management and sales checkout.
// Carts live in memory only; a successful checkout is the sole path that
// produces durable purchase records.
type CheckoutUsecase interface {
	// CreateCart opens a fresh empty cart and returns it.
	CreateCart(ctx context.Context) (*entity.Cart, error)

	// GetCart retrieves a cart by id.
	GetCart(ctx context.Context, cartID uuid.UUID) (*entity.Cart, error)

	// AddToCart adds quantity of a product to the cart, merging with an
	// existing line. Adds that would exceed live stock leave the cart unchanged.
	AddToCart(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// UpdateLineQuantity replaces the quantity of an existing cart line.
	UpdateLineQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// RemoveLine drops a product from the cart.
	RemoveLine(ctx context.Context, cartID, productID uuid.UUID) (*entity.Cart, error)

	// Checkout commits the cart in one transaction: purchase header, all lines
	// and every stock decrement land together or not at all. On success the
	// cart is reset; on failure it is left intact for retry.
	Checkout(ctx context.Context, cartID uuid.UUID, paymentMode entity.PaymentMode) (*entity.Purchase, error)

	// GetPurchase retrieves one completed purchase with its lines.
	GetPurchase(ctx context.Context, purchaseID uuid.UUID) (*entity.Purchase, error)

	// ListPurchases retrieves all completed purchases, newest first.
	ListPurchases(ctx context.Context) ([]*entity.Purchase, error)
}
