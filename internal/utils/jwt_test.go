package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("test-secret", 42, "OWNER", 15)
	require.NoError(t, err)

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "OWNER", claims["role"])
}

func TestRefreshTokenHashIsStable(t *testing.T) {
	rt, err := NewRefreshToken(30)
	require.NoError(t, err)
	assert.Len(t, rt.Raw, 96)
	assert.Equal(t, HashRefreshRaw(rt.Raw), HashRefreshRaw(rt.Raw))
	assert.NotEqual(t, rt.Raw, HashRefreshRaw(rt.Raw))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3nha-forte", 4)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "s3nha-forte"))
	assert.False(t, VerifyPassword(hash, "outra"))
}

func TestPasswordHashingClampsInvalidCost(t *testing.T) {
	// Costs outside bcrypt's range fall back to the default instead of
	// failing, so a bad BCRYPT_COST cannot block registration.
	for _, cost := range []int{-1, 0, 99} {
		hash, err := HashPassword("s3nha-forte", cost)
		require.NoError(t, err)
		assert.True(t, VerifyPassword(hash, "s3nha-forte"))
	}
}
