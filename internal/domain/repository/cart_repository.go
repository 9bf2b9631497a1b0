package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when the user has no cart yet.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists per-user carts and their product membership.
// Membership is a set: adding a product that is already present is a no-op.
type CartRepository interface {
	// FindCartByUserID loads the user's cart with its products.
	// Reads always go to the primary database.
	FindCartByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// GetOrCreateCart returns the user's cart, creating it when absent.
	// Concurrent first calls for one user converge on a single cart.
	GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddProduct connects productID to the cart.
	AddProduct(ctx context.Context, cartID, productID uuid.UUID) error

	// RemoveProducts disconnects exactly the given product ids from the cart.
	RemoveProducts(ctx context.Context, cartID uuid.UUID, productIDs []uuid.UUID) error
}
