package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/questboard/pkg/jwtx"
)

// InitSessionKeys generates the in-memory Ed25519 keys session tokens are
// signed with. Keys are not persisted, so a restart logs every wallet out.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("init session keys: %w", err)
	}

	logger.Info("session keys generated",
		slog.Int("count", km.NumSigners()),
		slog.String("issuer", cfg.Issuer),
	)
	return km, nil
}
