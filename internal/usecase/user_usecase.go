package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// EditUserInput holds the optional profile changes. Nil fields are left untouched.
type EditUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UserUsecase manages the signed-in user's own profile.
type UserUsecase interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	EditUser(ctx context.Context, userID uuid.UUID, input *EditUserInput) (*entity.User, error)
}
