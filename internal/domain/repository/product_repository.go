package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist or was deleted.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines catalog persistence. Deleted products are never
// returned by these methods.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error

	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts returns the catalog, newest first.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct soft-deletes the product so placed orders keep their snapshot.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
