package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	secret := []byte("test-secret")

	raw, err := NewAccessToken("user@example.com", "SELLER", secret)
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(raw, secret)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", claims.Subject)
	require.Equal(t, "SELLER", claims.Role)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	raw, err := NewAccessToken("user@example.com", "BUYER", []byte("secret-a"))
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(raw, []byte("secret-b"))
	require.Error(t, err)
}

func TestAccessTokenGarbage(t *testing.T) {
	_, err := AccessClaimsFromToken("not.a.jwt", []byte("secret"))
	require.Error(t, err)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	secret := []byte("test-secret")

	a, err := NewRefreshToken("user@example.com", secret)
	require.NoError(t, err)
	b, err := NewRefreshToken("user@example.com", secret)
	require.NoError(t, err)

	// The jti makes two tokens for the same user distinct.
	require.NotEqual(t, a, b)
}

func TestRefreshTokenNotAcceptedAsAccess(t *testing.T) {
	secret := []byte("test-secret")

	raw, err := NewRefreshToken("user@example.com", secret)
	require.NoError(t, err)

	// A refresh token parses but carries no role claim.
	claims, err := AccessClaimsFromToken(raw, secret)
	require.NoError(t, err)
	require.Empty(t, claims.Role)
}
