package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address book persistence.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by id regardless of owner.
	// Ownership is checked by the caller.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByUserID lists the user's addresses, oldest first.
	FindAddressesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	UpdateAddress(ctx context.Context, address *entity.Address) error

	DeleteAddress(ctx context.Context, id uuid.UUID) error
}
