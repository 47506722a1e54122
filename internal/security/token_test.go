package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	mgr := NewTokenManager(testSecret, 60)

	token, err := mgr.GenerateAccessToken(42, "carla@test.com", []string{"fleet_manager"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), claims.CustomerID)
	assert.Equal(t, "carla@test.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
	assert.True(t, claims.HasRole("fleet_manager"))
	assert.False(t, claims.HasRole("admin"))
}

func TestTokenManager_ValidateToken(t *testing.T) {
	mgr := NewTokenManager(testSecret, 60)

	t.Run("Garbage token", func(t *testing.T) {
		_, err := mgr.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		other := NewTokenManager("ffffffffffffffffffffffffffffffff", 60)
		token, err := other.GenerateAccessToken(1, "", nil)
		assert.NoError(t, err)

		_, err = mgr.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := NewTokenManager(testSecret, -1)
		token, err := expired.GenerateAccessToken(1, "", nil)
		assert.NoError(t, err)

		_, err = mgr.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
