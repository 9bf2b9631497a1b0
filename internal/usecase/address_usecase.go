package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput is the full address used on creation.
type AddressInput struct {
	Name             string
	Phone            string
	PinCode          string
	Locality         string
	Street           string
	City             string
	District         string
	State            string
	Landmark         *string
	AlternativePhone *string
}

// EditAddressInput is a partial update. Nil fields are left untouched.
type EditAddressInput struct {
	Name             *string
	Phone            *string
	PinCode          *string
	Locality         *string
	Street           *string
	City             *string
	District         *string
	State            *string
	Landmark         *string
	AlternativePhone *string
}

// AddressUsecase manages a user's address book. Every operation on a single
// address checks that it belongs to userID.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)
	AddAddress(ctx context.Context, userID uuid.UUID, input *AddressInput) (*entity.Address, error)
	EditAddress(ctx context.Context, userID, addressID uuid.UUID, input *EditAddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
