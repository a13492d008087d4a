package handler

import (
	"net/http"
	"time"

	"retailpos/internal/delivery/http/response"
	domainerrors "retailpos/internal/domain/errors"
	"retailpos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VatHandler holds dependencies for VAT rate handlers.
type VatHandler struct {
	uc usecase.VatUsecase
}

// NewVatHandler is the constructor for VatHandler, injected by Fx.
func NewVatHandler(uc usecase.VatUsecase) *VatHandler {
	return &VatHandler{
		uc: uc,
	}
}

type createVatRateRequest struct {
	EffectiveDate time.Time `json:"effective_date" validate:"required"`
	Percentage    float64   `json:"percentage" validate:"gte=0,lte=100"`
}

// CreateRate records a VAT percentage effective from a date.
func (h *VatHandler) CreateRate(c echo.Context) error {
	var input *createVatRateRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid VAT rate input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	rate, err := h.uc.CreateRate(c.Request().Context(), input.EffectiveDate, input.Percentage)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rate, "VAT rate created successfully")
}

// ListRates retrieves all rates, newest effective date first.
func (h *VatHandler) ListRates(c echo.Context) error {
	rates, err := h.uc.ListRates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rates, "VAT rates retrieved successfully")
}

// ApplicableRate returns the rate in force at the "at" query instant, or now.
func (h *VatHandler) ApplicableRate(c echo.Context) error {
	at := time.Now()
	if raw := c.QueryParam("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("query parameter 'at' must be RFC3339")
		}
		at = parsed
	}

	rate, err := h.uc.RateFor(c.Request().Context(), at)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rate, "VAT rate retrieved successfully")
}
