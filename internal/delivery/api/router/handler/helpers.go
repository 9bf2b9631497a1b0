package handler

import (
	"storefront/internal/delivery/api/middleware"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and runs its validate tags.
// Errors are left to the central error handler.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.Validate(req))
}

func idParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(name+" must be a UUID"), "parse path")
	}

	return id, nil
}

// currentUser returns the caller set by the auth middleware.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.Wrap(domainerrors.ErrUnauthorized, "no authenticated user")
	}

	return userID, nil
}
