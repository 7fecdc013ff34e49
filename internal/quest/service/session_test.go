package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/questboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T, svc services) *SessionService {
	t.Helper()

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "questboard-test", NumKeys: 2})
	require.NoError(t, err)

	return &SessionService{
		Store:    svc.store,
		Identity: svc.identity,
		Keys:     km,
		Issuer:   "questboard-test",
		TTL:      time.Hour,
	}
}

func TestLoginVerifyRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	sessions := newSessionService(t, svc)

	startAndFinish(t, svc, "0xabc0000000000000000000000000000000000abc", 1)
	_, err := svc.completion.Complete(ctx, CompleteRequest{Wallet: "0xabc0000000000000000000000000000000000abc", QuestID: 1})
	require.NoError(t, err)

	login, err := sessions.Login(ctx, "0xABC0000000000000000000000000000000000ABC", userMeta("firefox", ""))
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
	require.Equal(t, time.Hour, login.ExpiresIn)
	require.Equal(t, "0xabc0000000000000000000000000000000000abc", login.User.WalletAddress)
	require.Equal(t, 100, login.User.TotalXP)
	require.Equal(t, 1, login.CompletedQuests)
	require.Equal(t, 1, login.Achievements)

	got, err := sessions.Verify(ctx, login.Token)
	require.NoError(t, err)
	require.Equal(t, login.User.ID, got.User.ID)
	require.Equal(t, login.User.ID, got.Claims.Subject)
	require.Equal(t, "0xabc0000000000000000000000000000000000abc", got.Claims.Wallet)
	for _, scope := range SessionScopes {
		require.True(t, got.Claims.HasScope(scope))
	}
}

func TestLoginRegistersNewWallets(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	sessions := newSessionService(t, svc)

	login, err := sessions.Login(ctx, "0xfee0000000000000000000000000000000000001", userMeta("", ""))
	require.NoError(t, err)
	require.Zero(t, login.CompletedQuests)

	exists, err := svc.profile.Exists(ctx, "0xfee0000000000000000000000000000000000001")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	sessions := newSessionService(t, svc)

	_, err := sessions.Verify(ctx, "not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)

	// A token from another key set.
	other := newSessionService(t, svc)
	login, err := other.Login(ctx, "0xabc0000000000000000000000000000000000abc", userMeta("", ""))
	require.NoError(t, err)
	_, err = sessions.Verify(ctx, login.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyUnknownSubject(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	sessions := newSessionService(t, svc)

	claims := jwtx.NewSessionClaims("01HZZZZZZZZZZZZZZZZZZZZZZZ", "0x9011e00000000000000000000000000000000001", SessionScopes, time.Hour, "questboard-test", nil, time.Now())
	token, err := sessions.Keys.Signer().Sign(claims)
	require.NoError(t, err)

	_, err = sessions.Verify(ctx, token)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestVerifyRejectsMalformedSubject(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)
	sessions := newSessionService(t, svc)

	claims := jwtx.NewSessionClaims("user-1", "0x9011e00000000000000000000000000000000001", SessionScopes, time.Hour, "questboard-test", nil, time.Now())
	token, err := sessions.Keys.Signer().Sign(claims)
	require.NoError(t, err)

	_, err = sessions.Verify(ctx, token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
