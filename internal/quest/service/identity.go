package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/store"
	"github.com/aussiebroadwan/questboard/pkg/idx"
	"github.com/aussiebroadwan/questboard/pkg/retryx"
	"github.com/aussiebroadwan/questboard/pkg/slogx"
)

// IdentityService maps wallet addresses to users.
type IdentityService struct {
	Store store.Store
	Retry retryx.Policy
}

// ResolveOrCreate returns the user owning wallet, registering it on first
// sight. Concurrent first requests for one wallet all get the same row.
func (s *IdentityService) ResolveOrCreate(ctx context.Context, wallet string) (domain.User, error) {
	wallet = domain.NormalizeWallet(wallet)
	if wallet == "" {
		return domain.User{}, ErrInvalidWallet
	}

	return retryx.DoValue(ctx, s.Retry, func(ctx context.Context) (domain.User, error) {
		return resolve(ctx, s.Store.Users(), wallet, time.Now().UTC())
	})
}

func resolve(ctx context.Context, users store.Users, wallet string, now time.Time) (domain.User, error) {
	// 1. Existing user
	u, err := users.GetUserByWallet(ctx, wallet)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	// 2. Register
	u = domain.User{
		ID:            idx.NewAt(now).String(),
		WalletAddress: wallet,
		RegisteredAt:  now,
		LastActiveAt:  now,
		UpdatedAt:     now,
	}
	err = users.CreateUser(ctx, u)
	switch {
	case err == nil:
		slogx.FromContext(ctx).Info("user registered",
			slog.String("user_id", u.ID),
			slog.String("wallet", wallet),
		)
		return u, nil
	case errors.Is(err, store.ErrAlreadyExists):
		// 3. Lost the race to a concurrent creator
		return users.GetUserByWallet(ctx, wallet)
	default:
		return domain.User{}, err
	}
}

// Lookup is ResolveOrCreate without the create.
func (s *IdentityService) Lookup(ctx context.Context, wallet string) (domain.User, error) {
	wallet = domain.NormalizeWallet(wallet)
	if wallet == "" {
		return domain.User{}, ErrInvalidWallet
	}

	u, err := retryx.DoValue(ctx, s.Retry, func(ctx context.Context) (domain.User, error) {
		return s.Store.Users().GetUserByWallet(ctx, wallet)
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// Touch resolves the user and records activity. meta only fills fields that
// are still empty.
func (s *IdentityService) Touch(ctx context.Context, wallet string, meta domain.UserMeta) (domain.User, error) {
	u, err := s.ResolveOrCreate(ctx, wallet)
	if err != nil {
		return domain.User{}, err
	}

	return retryx.DoValue(ctx, s.Retry, func(ctx context.Context) (domain.User, error) {
		if err := s.Store.Users().TouchLastActive(ctx, u.ID, meta, time.Now().UTC()); err != nil {
			return domain.User{}, err
		}
		return s.Store.Users().GetUserByID(ctx, u.ID)
	})
}
