// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

// SigninInput defines the data required for a user to sign in.
type SigninInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// AuthOutput returns the issued tokens after signup or signin.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase covers account creation and session handling.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Signin(ctx context.Context, input *SigninInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	// Signout ends every session of the user.
	Signout(ctx context.Context, userID uuid.UUID) error
}
