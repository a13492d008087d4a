package handler

import (
	"io"
	"log/slog"
	"net/http"

	"retailpos/internal/delivery/http/response"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog and stock intake handlers.
type ProductHandler struct {
	catalog usecase.CatalogUsecase
	intake  usecase.IntakeUsecase
	logger  *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(catalog usecase.CatalogUsecase, intake usecase.IntakeUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		intake:  intake,
		logger:  logger,
	}
}

// CreateProduct handles the product creation request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.catalog.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles a partial product update.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.catalog.UpdateProduct(c.Request().Context(), productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles product removal, photo included.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalog.DeleteProduct(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// GetProduct retrieves one product with its categories.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalog.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// ListProducts retrieves the whole catalog.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

type addStockRequest struct {
	Amount int `json:"amount"`
}

// AddStock books a stock intake for one product.
func (h *ProductHandler) AddStock(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *addStockRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid intake input")
	}

	product, err := h.intake.AddStock(c.Request().Context(), productID, input.Amount)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Stock added successfully")
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateCategory handles category creation.
func (h *ProductHandler) CreateCategory(c echo.Context) error {
	var input *createCategoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.catalog.CreateCategory(c.Request().Context(), input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// ListCategories retrieves all categories.
func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// AssignCategory links a product to a category.
func (h *ProductHandler) AssignCategory(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	categoryID, err := pathUUID(c, "categoryID")
	if err != nil {
		return err
	}

	if err := h.catalog.AssignCategory(c.Request().Context(), productID, categoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category assigned successfully")
}

// UnassignCategory removes a product-category link.
func (h *ProductHandler) UnassignCategory(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	categoryID, err := pathUUID(c, "categoryID")
	if err != nil {
		return err
	}

	if err := h.catalog.UnassignCategory(c.Request().Context(), productID, categoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category unassigned successfully")
}

// UploadPhoto stores a product photo from a multipart form field named "photo".
func (h *ProductHandler) UploadPhoto(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("multipart field 'photo' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded photo")
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded photo")
	}

	product, err := h.catalog.UploadPhoto(c.Request().Context(), productID, fileHeader.Filename, payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Photo uploaded successfully")
}

// DeletePhoto removes the stored photo of a product.
func (h *ProductHandler) DeletePhoto(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalog.DeletePhoto(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Photo deleted successfully")
}

// ListPhotos enumerates the photo bucket contents.
func (h *ProductHandler) ListPhotos(c echo.Context) error {
	objects, err := h.catalog.ListPhotos(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, objects, "Photos retrieved successfully")
}
