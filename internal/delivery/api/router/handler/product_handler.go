package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProductHandler serves the catalog.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.uc.AddProduct(c.Request().Context(), &usecase.ProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Images:      req.Images,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

func (h *ProductHandler) Edit(c echo.Context) error {
	productID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req editProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.uc.EditProduct(c.Request().Context(), productID, &usecase.EditProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Images:      req.Images,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) Delete(c echo.Context) error {
	productID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
