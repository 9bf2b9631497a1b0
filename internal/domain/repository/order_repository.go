package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository persists placed orders. Orders are never updated.
type OrderRepository interface {
	// CreateOrder inserts the order and connects its products.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrdersByUserID lists the user's orders with their products, newest first.
	// Products deleted after the order was placed are still included.
	FindOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
