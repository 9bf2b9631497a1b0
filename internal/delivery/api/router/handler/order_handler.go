package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler serves checkout and order history.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}

	return response.Success(c, http.StatusOK, out)
}

// Checkout handles POST /order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req checkoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.uc.Checkout(c.Request().Context(), userID, &usecase.CheckoutInput{AddressID: req.AddressID})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order))
}
