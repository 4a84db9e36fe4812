package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/quill/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestTokenService(t *testing.T) {
	clock := newFakeClock()

	t.Run("short secret is rejected", func(t *testing.T) {
		_, err := NewTokenService([]byte("short"), "quill", time.Hour, clock.Now)
		require.Error(t, err)
	})

	ts, err := NewTokenService([]byte("test-secret-at-least-16"), "quill", 0, clock.Now)
	require.NoError(t, err)
	require.Equal(t, jwtx.DefaultAccessTokenTTL, ts.TTL)

	token, err := ts.Issue("user-1", "a@b.co")
	require.NoError(t, err)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "a@b.co", claims.Email)
	require.Equal(t, "quill", claims.Issuer)
	require.True(t, clock.Now().Add(time.Hour).Equal(claims.ExpiresAt.Time))

	t.Run("other issuer", func(t *testing.T) {
		other, err := NewTokenService([]byte("test-secret-at-least-16"), "someone-else", 0, clock.Now)
		require.NoError(t, err)
		_, err = other.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := NewTokenService([]byte("another-secret-of-16+"), "quill", 0, clock.Now)
		require.NoError(t, err)
		_, err = other.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})
}
