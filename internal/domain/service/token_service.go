package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "typ" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"sub_id"`
	Email  string    `json:"email"`
	Type   string    `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens creates a signed access token and refresh token for a user.
	GenerateTokens(userID uuid.UUID, email string) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates only a new access token.
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)

	// ValidateAccessToken parses an access token signed with the access secret.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken parses a refresh token signed with the refresh secret.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the digest under which refresh tokens are stored.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
