package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig(t *testing.T) {
	t.Run("default cost", func(t *testing.T) {
		cfg, err := NewPasswordConfig()
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.BcryptCost)
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "10")
		cfg, err := NewPasswordConfig()
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.BcryptCost)
	})

	t.Run("out of range", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "20")
		_, err := NewPasswordConfig()
		assert.Error(t, err)
	})

	t.Run("not a number", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "high")
		_, err := NewPasswordConfig()
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 4} // minimum cost keeps the test fast

	hash, err := cfg.HashPassword("senha-secreta")
	require.NoError(t, err)
	assert.NotEqual(t, "senha-secreta", hash)

	assert.True(t, cfg.VerifyPassword("senha-secreta", hash))
	assert.False(t, cfg.VerifyPassword("senha-errada", hash))
	assert.False(t, cfg.VerifyPassword("senha-secreta", "not-a-hash"))
}

func TestNewJWTConfig(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, "test-secret", cfg.Secret)
		assert.Equal(t, 24, cfg.ExpirationHours)
	})

	t.Run("expiration override", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "72")
		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, 72, cfg.ExpirationHours)
	})

	t.Run("invalid expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}
