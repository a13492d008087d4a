package handler

import (
	"net/http"

	"retailpos/internal/delivery/http/response"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ImportHandler holds dependencies for spreadsheet import handlers.
type ImportHandler struct {
	uc usecase.ImportUsecase
}

// NewImportHandler is the constructor for ImportHandler, injected by Fx.
func NewImportHandler(uc usecase.ImportUsecase) *ImportHandler {
	return &ImportHandler{
		uc: uc,
	}
}

// ImportWorkbook applies an uploaded xlsx workbook from a multipart form field
// named "file".
func (h *ImportHandler) ImportWorkbook(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("multipart field 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded workbook")
	}
	defer file.Close()

	summary, err := h.uc.ImportWorkbook(c.Request().Context(), file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Workbook imported successfully")
}

type importRowsRequest struct {
	Rows []usecase.ImportRow `json:"rows"`
}

// ImportRows applies pre-parsed rows sent as JSON.
func (h *ImportHandler) ImportRows(c echo.Context) error {
	var input *importRowsRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import input")
	}

	summary, err := h.uc.ImportRows(c.Request().Context(), input.Rows)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Rows imported successfully")
}

// PredictionHistory retrieves a product's imported price and sales history.
func (h *ImportHandler) PredictionHistory(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	predictions, err := h.uc.PredictionHistory(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, predictions, "Prediction history retrieved successfully")
}
