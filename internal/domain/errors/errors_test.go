package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrCartEmpty.WithDetails("cart 42 has no products")

	assert.True(t, stderrors.Is(detailed, ErrCartEmpty))
	assert.False(t, stderrors.Is(detailed, ErrCartAccessDenied))
	assert.Equal(t, http.StatusForbidden, detailed.HTTPCode())
	assert.Equal(t, "cart 42 has no products", detailed.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrProductNotFound.WrapMessage("add to cart")

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
	assert.Contains(t, wrapped.Error(), "add to cart")
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert order", err.Details())
	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
