package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a shipping address in a user's address book.
type Address struct {
	ID               uuid.UUID
	UserID           uuid.UUID
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
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OwnerID implements Owned.
func (a *Address) OwnerID() uuid.UUID {
	return a.UserID
}
