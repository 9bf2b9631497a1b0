package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
	// ErrAuthAlreadyExists is returned when the provider identity is already linked to a user.
	ErrAuthAlreadyExists = errors.New("authentication method already exists")
)

// AuthRepository persists login credentials.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)

	// FindAuthenticationByUser retrieves the user's credential for provider.
	FindAuthenticationByUser(ctx context.Context, userID uuid.UUID, provider string) (*entity.Authentication, error)

	// UpdateAuthentication saves ProviderUserID and PasswordHash of an existing record.
	UpdateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
