package handler

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Requests ---

type signupRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type editUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
}

type addressRequest struct {
	Name             string  `json:"name" validate:"required,max=100"`
	Phone            string  `json:"phone" validate:"required,max=20"`
	PinCode          string  `json:"pin_code" validate:"required,max=12"`
	Locality         string  `json:"locality" validate:"required"`
	Street           string  `json:"street" validate:"required"`
	City             string  `json:"city" validate:"required"`
	District         string  `json:"district" validate:"required"`
	State            string  `json:"state" validate:"required"`
	Landmark         *string `json:"landmark"`
	AlternativePhone *string `json:"alternative_phone" validate:"omitempty,max=20"`
}

type editAddressRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone            *string `json:"phone" validate:"omitempty,min=1,max=20"`
	PinCode          *string `json:"pin_code" validate:"omitempty,min=1,max=12"`
	Locality         *string `json:"locality" validate:"omitempty,min=1"`
	Street           *string `json:"street" validate:"omitempty,min=1"`
	City             *string `json:"city" validate:"omitempty,min=1"`
	District         *string `json:"district" validate:"omitempty,min=1"`
	State            *string `json:"state" validate:"omitempty,min=1"`
	Landmark         *string `json:"landmark"`
	AlternativePhone *string `json:"alternative_phone" validate:"omitempty,max=20"`
}

type productRequest struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images" validate:"required,min=1,dive,required,url"`
	Description *string         `json:"description"`
}

type editProductRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Price       *decimal.Decimal `json:"price"`
	Images      []string         `json:"images" validate:"omitempty,min=1,dive,required,url"`
	Description *string          `json:"description"`
}

type cartRequest struct {
	ProductID uuid.UUID `json:"product_id" query:"product_id" validate:"required"`
}

type checkoutRequest struct {
	AddressID uuid.UUID `json:"address_id" validate:"required"`
}

// --- Responses ---

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type authResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *userResponse `json:"user"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

type addressResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	PinCode          string    `json:"pin_code"`
	Locality         string    `json:"locality"`
	Street           string    `json:"street"`
	City             string    `json:"city"`
	District         string    `json:"district"`
	State            string    `json:"state"`
	Landmark         *string   `json:"landmark"`
	AlternativePhone *string   `json:"alternative_phone"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type productResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type cartResponse struct {
	// Nil until the first product is added.
	ID       *uuid.UUID         `json:"id"`
	UserID   uuid.UUID          `json:"user_id"`
	Products []*productResponse `json:"products"`
}

type orderResponse struct {
	ID        uuid.UUID          `json:"id"`
	AddressID uuid.UUID          `json:"address_id"`
	Status    string             `json:"status"`
	Products  []*productResponse `json:"products"`
	CreatedAt time.Time          `json:"created_at"`
}

func toUserResponse(u *entity.User) *userResponse {
	return &userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAddressResponse(a *entity.Address) *addressResponse {
	return &addressResponse{
		ID:               a.ID,
		Name:             a.Name,
		Phone:            a.Phone,
		PinCode:          a.PinCode,
		Locality:         a.Locality,
		Street:           a.Street,
		City:             a.City,
		District:         a.District,
		State:            a.State,
		Landmark:         a.Landmark,
		AlternativePhone: a.AlternativePhone,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func toProductResponse(p *entity.Product) *productResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return &productResponse{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Images:      images,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*productResponse {
	out := make([]*productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	return out
}

func toCartResponse(c *entity.Cart) *cartResponse {
	resp := &cartResponse{
		UserID:   c.UserID,
		Products: toProductResponses(c.Products),
	}
	if c.ID != uuid.Nil {
		id := c.ID
		resp.ID = &id
	}

	return resp
}

func toOrderResponse(o *entity.Order) *orderResponse {
	return &orderResponse{
		ID:        o.ID,
		AddressID: o.AddressID,
		Status:    string(o.Status),
		Products:  toProductResponses(o.Products),
		CreatedAt: o.CreatedAt,
	}
}
