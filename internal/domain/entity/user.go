// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account that owns addresses, a cart and orders.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email, also the login identifier.
	FirstName *string   // Optional given name.
	LastName  *string   // Optional family name.
	CreatedAt time.Time
	UpdatedAt time.Time
}
