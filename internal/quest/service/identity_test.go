package service

import (
	"context"
	"sync"
	"testing"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/stretchr/testify/require"
)

func TestResolveOrCreate(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	t.Run("normalises and registers once", func(t *testing.T) {
		a, err := svc.identity.ResolveOrCreate(ctx, "  0xABC0000000000000000000000000000000000ABC ")
		require.NoError(t, err)
		require.Equal(t, "0xabc0000000000000000000000000000000000abc", a.WalletAddress)
		require.Zero(t, a.TotalXP)

		b, err := svc.identity.ResolveOrCreate(ctx, "0xabc0000000000000000000000000000000000abc")
		require.NoError(t, err)
		require.Equal(t, a.ID, b.ID)
	})

	t.Run("rejects malformed wallets", func(t *testing.T) {
		for _, w := range []string{
			"   ",
			"hello",
			"0xabc",
			"0xABC0000000000000000000000000000000000aBC", // mixed case, bad checksum
		} {
			_, err := svc.identity.ResolveOrCreate(ctx, w)
			require.ErrorIs(t, err, ErrInvalidWallet, w)
		}

		n, err := svc.store.Users().Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})

	t.Run("concurrent first requests share one user", func(t *testing.T) {
		const n = 10
		var wg sync.WaitGroup
		ids := make([]string, n)
		errs := make([]error, n)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				u, err := svc.identity.ResolveOrCreate(ctx, "0x4ace000000000000000000000000000000000001")
				ids[i], errs[i] = u.ID, err
			}()
		}
		wg.Wait()

		for i := range n {
			require.NoError(t, errs[i])
			require.Equal(t, ids[0], ids[i])
		}
		n2, err := svc.store.Users().Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, n2)
	})
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	_, err := svc.identity.Lookup(ctx, "0x0b0d000000000000000000000000000000000001")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.identity.ResolveOrCreate(ctx, "0x50bed00000000000000000000000000000000001")
	require.NoError(t, err)

	u, err := svc.identity.Lookup(ctx, "0XSOMEBODY")
	require.NoError(t, err)
	require.Equal(t, "0x50bed00000000000000000000000000000000001", u.WalletAddress)
}

func TestTouchFillsMetadataOnce(t *testing.T) {
	ctx := context.Background()
	svc := newServices(t)

	first, err := svc.identity.Touch(ctx, "0xabc0000000000000000000000000000000000abc", userMeta("firefox", "twitter"))
	require.NoError(t, err)
	require.Equal(t, "firefox", first.Browser)

	second, err := svc.identity.Touch(ctx, "0xabc0000000000000000000000000000000000abc", userMeta("chrome", "discord"))
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "firefox", second.Browser)
	require.Equal(t, "twitter", second.ReferralSource)
	require.False(t, second.LastActiveAt.Before(first.LastActiveAt))
}

func userMeta(browser, referral string) domain.UserMeta {
	return domain.UserMeta{Browser: browser, ReferralSource: referral}
}
