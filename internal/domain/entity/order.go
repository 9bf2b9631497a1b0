package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// OrderStatusPlaced is the only state an order reaches: checkout creates it
// and nothing modifies it afterwards.
const OrderStatusPlaced OrderStatus = "PLACED"

// Order is an immutable snapshot of a cart at checkout, shipped to one address.
type Order struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	AddressID uuid.UUID
	Status    OrderStatus
	Products  []*Product
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerID implements Owned.
func (o *Order) OwnerID() uuid.UUID {
	return o.UserID
}
