// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves signup, signin, token refresh and signout.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(output))
}

// Signin handles POST /auth/signin.
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Signin(c.Request().Context(), &usecase.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &refreshResponse{AccessToken: output.AccessToken})
}

// Signout handles DELETE /auth/signout.
func (h *AuthHandler) Signout(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.Signout(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func toAuthResponse(output *usecase.AuthOutput) *authResponse {
	return &authResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         toUserResponse(output.User),
	}
}
