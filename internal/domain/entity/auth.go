package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderEmail is the only login method: email plus bcrypt-hashed password.
const ProviderEmail = "email"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // Always ProviderEmail for now.
	ProviderUserID string    // The login identifier at the provider, the email address for ProviderEmail.
	PasswordHash   string
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session is no longer usable at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
