// Package middleware holds the API-specific echo middlewares.
package middleware

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}
		_ = response.HandleAppError(c, appErr)

		return
	}

	if fields := validator.FieldErrors(err); fields != nil {
		_ = response.ValidationError(c, fields)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logUnhandled(c, err)

	// For 500 errors, do not expose internal error details to the client
	_ = response.Error(c, http.StatusInternalServerError,
		domainerrors.ErrInternalServer.ErrorCode(), "Internal server error, please try again later", nil)
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).ErrorContext(ctx, "Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
