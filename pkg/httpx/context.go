package httpx

import (
	"context"

	"github.com/aussiebroadwan/questboard/pkg/jwtx"
)

type ctxKey string

const (
	ctxKeyUserID ctxKey = "user_id"
	ctxKeyWallet ctxKey = "wallet"
	ctxKeyClaims ctxKey = "claims"
)

// WithClaims stores the verified session claims on ctx.
func WithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, ctxKeyWallet, c.Wallet)
	return context.WithValue(ctx, ctxKeyClaims, c)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyUserID).(string)
	return v, ok && v != ""
}

func WalletFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyWallet).(string)
	return v, ok && v != ""
}

func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims).(jwtx.Claims)
	return c, ok
}
