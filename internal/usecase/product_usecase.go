package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput is the full product used on creation.
type ProductInput struct {
	Title       string
	Price       decimal.Decimal
	Images      []string
	Description *string
}

// EditProductInput is a partial update. Nil fields are left untouched.
type EditProductInput struct {
	Title       *string
	Price       *decimal.Decimal
	Images      []string
	Description *string
}

// ProductUsecase manages the catalog.
type ProductUsecase interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	AddProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	EditProduct(ctx context.Context, productID uuid.UUID, input *EditProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}
