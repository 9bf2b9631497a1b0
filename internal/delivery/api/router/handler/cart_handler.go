package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CartHandler serves the caller's cart.
type CartHandler struct {
	uc usecase.CartUsecase
}

func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) Get(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart))
}

func (h *CartHandler) Add(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req cartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.uc.AddToCart(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart))
}

// Remove accepts product_id in the body or the query string.
func (h *CartHandler) Remove(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req cartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.uc.RemoveFromCart(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart))
}
