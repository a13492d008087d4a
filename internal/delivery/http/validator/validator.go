// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "retailpos/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// requestValidator wraps a validator instance for echo.
type requestValidator struct {
	validate *validator.Validate
}

// New creates the validator used for request DTOs carrying validate tags.
func New() *requestValidator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Violations surface as validation errors
// so the error handler renders them with a 400 and the offending fields.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
