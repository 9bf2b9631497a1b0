package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages the user's single cart.
type CartUsecase interface {
	// AddToCart puts the product in the user's cart, creating the cart on first use.
	// An unknown product fails before any cart is created.
	AddToCart(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error)

	// RemoveFromCart takes the product out of the user's existing cart.
	RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error)

	// GetCart returns the cart, or an empty unsaved cart when the user has none.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
}
