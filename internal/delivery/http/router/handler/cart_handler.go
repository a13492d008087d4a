package handler

import (
	"net/http"

	"retailpos/internal/delivery/http/response"
	"retailpos/internal/domain/entity"
	"retailpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart and checkout handlers.
type CartHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CheckoutUsecase) *CartHandler {
	return &CartHandler{
		uc: uc,
	}
}

// CreateCart opens a fresh empty cart.
func (h *CartHandler) CreateCart(c echo.Context) error {
	cart, err := h.uc.CreateCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, cart, "Cart created successfully")
}

// GetCart retrieves a cart by id.
func (h *CartHandler) GetCart(c echo.Context) error {
	cartID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cart, err := h.uc.GetCart(c.Request().Context(), cartID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

type addLineRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// AddLine adds a product to the cart, merging with an existing line.
func (h *CartHandler) AddLine(c echo.Context) error {
	cartID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *addLineRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart line input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.AddToCart(c.Request().Context(), cartID, input.ProductID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Line added successfully")
}

type updateLineRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// UpdateLine replaces the quantity of an existing cart line.
func (h *CartHandler) UpdateLine(c echo.Context) error {
	cartID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathUUID(c, "productID")
	if err != nil {
		return err
	}

	var input *updateLineRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart line input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.UpdateLineQuantity(c.Request().Context(), cartID, productID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Line updated successfully")
}

// RemoveLine drops a product from the cart.
func (h *CartHandler) RemoveLine(c echo.Context) error {
	cartID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathUUID(c, "productID")
	if err != nil {
		return err
	}

	cart, err := h.uc.RemoveLine(c.Request().Context(), cartID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Line removed successfully")
}

type checkoutRequest struct {
	PaymentMode string `json:"payment_mode" validate:"required"`
}

// Checkout commits the cart into a durable purchase.
func (h *CartHandler) Checkout(c echo.Context) error {
	cartID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *checkoutRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	purchase, err := h.uc.Checkout(c.Request().Context(), cartID, entity.PaymentMode(input.PaymentMode))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, purchase, "Checkout completed successfully")
}

// GetPurchase retrieves one completed purchase with its lines.
func (h *CartHandler) GetPurchase(c echo.Context) error {
	purchaseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	purchase, err := h.uc.GetPurchase(c.Request().Context(), purchaseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchase, "Purchase retrieved successfully")
}

// ListPurchases retrieves all completed purchases, newest first.
func (h *CartHandler) ListPurchases(c echo.Context) error {
	purchases, err := h.uc.ListPurchases(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchases, "Purchases retrieved successfully")
}
