package auth

import (
	"strings"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newHasherConfig() *config.Config {
	return &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 6, MaxLength: 72},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig())

	hash, err := hasher.Hash("secret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pass", hash)

	assert.True(t, hasher.Check("secret-pass", hash))
	assert.False(t, hasher.Check("wrong-pass", hash))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_LengthBounds(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig())

	for _, pw := range []string{"", "12345", strings.Repeat("x", 73)} {
		_, err := hasher.Hash(pw)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	}
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	cfg := newHasherConfig()
	cfg.Auth.BcryptCost = 99

	hasher := NewBcryptHasher(cfg).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
