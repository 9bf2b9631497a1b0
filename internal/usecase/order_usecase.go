package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput selects the shipping address for the order.
type CheckoutInput struct {
	AddressID uuid.UUID
}

// OrderUsecase turns carts into orders and lists them.
type OrderUsecase interface {
	// Checkout converts the user's cart into a PLACED order and removes the
	// ordered products from the cart, atomically.
	Checkout(ctx context.Context, userID uuid.UUID, input *CheckoutInput) (*entity.Order, error)

	// ListOrders returns the user's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
