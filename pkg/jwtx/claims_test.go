package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/questboard/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewSessionClaims(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	c := jwtx.NewSessionClaims("01HQ", "0xabc", []string{"profile:read"}, time.Hour, "questboard", nil, now)

	require.Equal(t, "01HQ", c.Subject)
	require.Equal(t, "0xabc", c.Wallet)
	require.Equal(t, now.Add(time.Hour), c.ExpiresAt.Time)
	require.NotEmpty(t, c.ID)
	require.True(t, c.HasScope("profile:read"))
	require.False(t, c.HasScope("progress:write"))
}

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "questboard"}}

	require.NoError(t, c.ValidateIssuer("questboard"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("elsewhere"), jwtx.ErrIssuer)
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Audience: []string{"web", "cli"}}}

	require.NoError(t, c.ValidateAudience([]string{"cli"}))
	require.NoError(t, c.ValidateAudience([]string{"nope", "web"}))
	require.NoError(t, c.ValidateAudience(nil))
	require.ErrorIs(t, c.ValidateAudience([]string{"admin"}), jwtx.ErrAudience)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}}

	require.NoError(t, c.ValidateExpiry(now, 0))
	require.ErrorIs(t, c.ValidateExpiry(now.Add(2*time.Minute), 0), jwtx.ErrExpired)
	require.ErrorIs(t, c.ValidateExpiry(now.Add(-time.Second), 0), jwtx.ErrNotYetValid)

	t.Run("leeway", func(t *testing.T) {
		require.NoError(t, c.ValidateExpiry(now.Add(time.Minute+5*time.Second), 10*time.Second))
		require.NoError(t, c.ValidateExpiry(now.Add(-5*time.Second), 10*time.Second))
	})
}
