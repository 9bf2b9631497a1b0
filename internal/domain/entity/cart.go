package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the single mutable selection of products owned by a user.
// A product is either in the cart or not; there are no quantities.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Products  []*Product
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEmptyCart returns an unsaved cart for a user that has none yet.
func NewEmptyCart(userID uuid.UUID) *Cart {
	return &Cart{UserID: userID, Products: []*Product{}}
}

// IsEmpty reports whether the cart holds no products.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Products) == 0
}

// Contains reports whether productID is in the cart.
func (c *Cart) Contains(productID uuid.UUID) bool {
	if c == nil {
		return false
	}
	for _, p := range c.Products {
		if p.ID == productID {
			return true
		}
	}

	return false
}

// OwnerID implements Owned.
func (c *Cart) OwnerID() uuid.UUID {
	return c.UserID
}
