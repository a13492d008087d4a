package handler

import (
	"net/http"

	"retailpos/internal/delivery/http/response"
	"retailpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store and staff assignment handlers.
type StoreHandler struct {
	uc usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{
		uc: uc,
	}
}

type createStoreRequest struct {
	Location int `json:"location" validate:"gte=0"`
}

// CreateStore adds a store and returns the refreshed collection.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var input *createStoreRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	stores, err := h.uc.CreateStore(c.Request().Context(), input.Location)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, stores, "Store created successfully")
}

// GetStore retrieves one store with its users and products.
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	store, err := h.uc.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved successfully")
}

// ListStores retrieves all stores.
func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, err := h.uc.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Stores retrieved successfully")
}

// DeleteStore removes a store and returns the refreshed collection.
func (h *StoreHandler) DeleteStore(c echo.Context) error {
	storeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	stores, err := h.uc.DeleteStore(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Store deleted successfully")
}

// AssignUser links a staff member to a store.
func (h *StoreHandler) AssignUser(c echo.Context) error {
	storeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "userID")
	if err != nil {
		return err
	}

	stores, err := h.uc.AssignUser(c.Request().Context(), storeID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "User assigned successfully")
}

// RemoveUser removes a staff member from a store.
func (h *StoreHandler) RemoveUser(c echo.Context) error {
	storeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "userID")
	if err != nil {
		return err
	}

	stores, err := h.uc.RemoveUser(c.Request().Context(), storeID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "User removed successfully")
}

type storeProductRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
}

// AddProduct links a product to a store with a per-store quantity.
func (h *StoreHandler) AddProduct(c echo.Context) error {
	storeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *storeProductRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	stores, err := h.uc.AddProduct(c.Request().Context(), storeID, input.ProductID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Product added to store successfully")
}

type updateStoreProductRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// UpdateProductQuantity replaces the per-store quantity of a linked product.
func (h *StoreHandler) UpdateProductQuantity(c echo.Context) error {
	storeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathUUID(c, "productID")
	if err != nil {
		return err
	}

	var input *updateStoreProductRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	stores, err := h.uc.UpdateProductQuantity(c.Request().Context(), storeID, productID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Store product quantity updated successfully")
}

// RemoveProduct removes a product from a store.
func (h *StoreHandler) RemoveProduct(c echo.Context) error {
	storeID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathUUID(c, "productID")
	if err != nil {
		return err
	}

	stores, err := h.uc.RemoveProduct(c.Request().Context(), storeID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Product removed from store successfully")
}

type createUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// CreateUser adds a staff member.
func (h *StoreHandler) CreateUser(c echo.Context) error {
	var input *createUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CreateUser(c.Request().Context(), input.Name, input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// ListUsers retrieves all staff members.
func (h *StoreHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}
