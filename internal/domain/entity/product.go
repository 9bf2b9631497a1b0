package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. Deleted products disappear from the catalog and
// from carts but stay attached to the orders that bought them.
type Product struct {
	ID          uuid.UUID
	Title       string
	Price       decimal.Decimal
	Images      []string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// ProductIDs returns the ids of products in order.
func ProductIDs(products []*Product) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	return ids
}
