package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AddressHandler serves the caller's address book.
type AddressHandler struct {
	uc usecase.AddressUsecase
}

func NewAddressHandler(uc usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

func (h *AddressHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*addressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, toAddressResponse(a))
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *AddressHandler) Get(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	addressID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.uc.GetAddress(c.Request().Context(), userID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

func (h *AddressHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req addressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.uc.AddAddress(c.Request().Context(), userID, &usecase.AddressInput{
		Name:             req.Name,
		Phone:            req.Phone,
		PinCode:          req.PinCode,
		Locality:         req.Locality,
		Street:           req.Street,
		City:             req.City,
		District:         req.District,
		State:            req.State,
		Landmark:         req.Landmark,
		AlternativePhone: req.AlternativePhone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address))
}

func (h *AddressHandler) Edit(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	addressID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req editAddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.uc.EditAddress(c.Request().Context(), userID, addressID, &usecase.EditAddressInput{
		Name:             req.Name,
		Phone:            req.Phone,
		PinCode:          req.PinCode,
		Locality:         req.Locality,
		Street:           req.Street,
		City:             req.City,
		District:         req.District,
		State:            req.State,
		Landmark:         req.Landmark,
		AlternativePhone: req.AlternativePhone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

func (h *AddressHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	addressID, err := idParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
