package entity

import "github.com/google/uuid"

// Owned is implemented by resources that belong to exactly one user.
type Owned interface {
	OwnerID() uuid.UUID
}
