package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := issueJWT("shopper@example.com", "user", "uid-123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "shopper@example.com", claims["email"])
	assert.Equal(t, "user", claims["role"])
	assert.Equal(t, "uid-123", claims["user_id"])
	assert.NotZero(t, claims["exp"])
}
