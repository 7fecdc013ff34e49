package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/store"
	"github.com/aussiebroadwan/questboard/pkg/idx"
	"github.com/aussiebroadwan/questboard/pkg/jwtx"
	"github.com/aussiebroadwan/questboard/pkg/slogx"
)

// Scopes granted to every wallet session.
const (
	ScopeProgressWrite = "progress:write"
	ScopeProfileRead   = "profile:read"
	ScopeProfileWrite  = "profile:write"
)

var SessionScopes = []string{ScopeProgressWrite, ScopeProfileRead, ScopeProfileWrite}

type LoginResult struct {
	Token           string
	ExpiresIn       time.Duration
	User            domain.User
	CompletedQuests int
	Achievements    int
}

type VerifyResult struct {
	Claims          jwtx.Claims
	User            domain.User
	CompletedQuests int
	Achievements    int
}

// SessionService issues wallet session tokens. Proving wallet ownership is
// left to the caller.
type SessionService struct {
	Store    store.Store
	Identity *IdentityService
	Keys     *jwtx.KeyManager
	Issuer   string
	TTL      time.Duration
}

func (s *SessionService) Login(ctx context.Context, wallet string, meta domain.UserMeta) (LoginResult, error) {
	user, err := s.Identity.Touch(ctx, wallet, meta)
	if err != nil {
		return LoginResult{}, err
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(user.ID, user.WalletAddress, SessionScopes, ttl, s.Issuer, nil, time.Now())
	token, err := s.Keys.Signer().Sign(claims)
	if err != nil {
		return LoginResult{}, err
	}

	completed, achievements, err := s.counts(ctx, user.ID)
	if err != nil {
		return LoginResult{}, err
	}

	slogx.FromContext(ctx).Info("session issued",
		slog.String("user_id", user.ID),
		slog.String("jti", claims.ID),
	)

	return LoginResult{
		Token:           token,
		ExpiresIn:       ttl,
		User:            user,
		CompletedQuests: completed,
		Achievements:    achievements,
	}, nil
}

func (s *SessionService) Verify(ctx context.Context, token string) (VerifyResult, error) {
	claims, err := s.Keys.Verifier().Verify(token)
	if err != nil {
		slogx.FromContext(ctx).Debug("token rejected", slog.Any("error", err))
		return VerifyResult{}, ErrInvalidToken
	}
	if _, err := idx.Parse(claims.Subject); err != nil {
		return VerifyResult{}, ErrInvalidToken
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if errors.Is(err, store.ErrNotFound) {
		return VerifyResult{}, ErrUserNotFound
	}
	if err != nil {
		return VerifyResult{}, err
	}
	if user.WalletAddress != claims.Wallet {
		return VerifyResult{}, ErrInvalidToken
	}

	completed, achievements, err := s.counts(ctx, user.ID)
	if err != nil {
		return VerifyResult{}, err
	}

	return VerifyResult{
		Claims:          claims,
		User:            user,
		CompletedQuests: completed,
		Achievements:    achievements,
	}, nil
}

func (s *SessionService) counts(ctx context.Context, userID string) (completed, achievements int, err error) {
	if completed, err = s.Store.Completions().CountByUser(ctx, userID); err != nil {
		return 0, 0, err
	}
	if achievements, err = s.Store.Achievements().CountByUser(ctx, userID); err != nil {
		return 0, 0, err
	}
	return completed, achievements, nil
}
