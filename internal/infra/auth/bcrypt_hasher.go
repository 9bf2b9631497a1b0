package auth

import (
	"unicode/utf8"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
	maxLength int
}

// NewBcryptHasher builds a hasher with the configured cost and length bounds.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	h := &bcryptHasher{cost: bcrypt.DefaultCost, minLength: 1, maxLength: 72}

	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		h.cost = cfg.Auth.BcryptCost
	}
	if ps := cfg.PasswordStrength; ps != nil {
		if ps.MinLength > 0 {
			h.minLength = ps.MinLength
		}
		// bcrypt ignores everything past 72 bytes.
		if ps.MaxLength > 0 && ps.MaxLength <= 72 {
			h.maxLength = ps.MaxLength
		}
	}

	return h
}

// Hash rejects passwords outside the length bounds, then hashes with bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	n := utf8.RuneCountInString(password)
	if n < h.minLength || n > h.maxLength || len(password) > 72 {
		return "", domainerrors.ErrPasswordStrength.WithDetails("password length out of range")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
