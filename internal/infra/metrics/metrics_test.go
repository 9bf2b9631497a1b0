package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCheckout(t *testing.T) {
	m := New()
	rec := NewCheckoutRecorder(m)

	rec.RecordCheckout(service.CheckoutOutcomePlaced)
	rec.RecordCheckout(service.CheckoutOutcomePlaced)
	rec.RecordCheckout(service.CheckoutOutcomeCartEmpty)

	assert.InDelta(t, 2, testutil.ToFloat64(m.checkoutTotal.WithLabelValues(service.CheckoutOutcomePlaced)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.checkoutTotal.WithLabelValues(service.CheckoutOutcomeCartEmpty)), 0)
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/product/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/metrics", m.Handler())

	for _, id := range []string{"a", "b"} {
		req := httptest.NewRequest(http.MethodGet, "/product/"+id, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.requestTotal.WithLabelValues(http.MethodGet, "/product/:id", "204")), 0)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_http_requests_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
