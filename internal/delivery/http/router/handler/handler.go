// Package handler contains the HTTP handlers for the application.
package handler

import (
	domainerrors "retailpos/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathUUID parses a UUID path parameter, turning a malformed value into a
// validation error the central error handler renders as a 400.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " is not a valid UUID")
	}

	return id, nil
}
