package jwtx

import (
	"crypto/ed25519"
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/aussiebroadwan/questboard/pkg/cryptox"
)

type KeyManagerOptions struct {
	Issuer   string
	Audience []string

	// Leeway on exp and nbf during verification.
	Leeway time.Duration

	// NumKeys is clamped to 1..10, default 3.
	NumKeys int

	// KIDPrefix defaults to "quest".
	KIDPrefix string
}

// KeyManager owns a set of in-memory Ed25519 signing keys. Keys are never
// persisted, so every restart invalidates previously issued sessions.
type KeyManager struct {
	mu      sync.RWMutex
	signers []Signer

	keys     *KeySet
	verifier *EdDSAVerifier
}

func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, errors.New("jwtx: issuer is required")
	}

	n := opts.NumKeys
	switch {
	case n <= 0:
		n = 3
	case n > 10:
		n = 10
	}
	prefix := opts.KIDPrefix
	if prefix == "" {
		prefix = "quest"
	}

	km := &KeyManager{keys: NewKeySet()}
	for i := range n {
		_, priv, err := ed25519.GenerateKey(crand.Reader)
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate key %d: %w", i+1, err)
		}
		s, err := NewSignerFromKey(prefix+"-"+cryptox.MustGenerateToken(cryptox.TokenSize128), priv)
		if err != nil {
			return nil, err
		}
		if err := km.AddSigner(s); err != nil {
			return nil, err
		}
	}

	km.verifier = NewVerifier(km.keys, VerifyOptions{
		Issuer:   opts.Issuer,
		Audience: opts.Audience,
		Leeway:   opts.Leeway,
	})
	return km, nil
}

// Signer picks one of the active keys at random.
func (km *KeyManager) Signer() Signer {
	km.mu.RLock()
	defer km.mu.RUnlock()

	switch len(km.signers) {
	case 0:
		return nil
	case 1:
		return km.signers[0]
	}
	return km.signers[rand.IntN(len(km.signers))]
}

func (km *KeyManager) Verifier() Verifier { return km.verifier }
func (km *KeyManager) KeySet() *KeySet    { return km.keys }

// IsReady reports whether at least one signing key is loaded.
func (km *KeyManager) IsReady() bool {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.signers) > 0
}

func (km *KeyManager) NumSigners() int {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.signers)
}

// AddSigner activates s for signing and publishes its key.
func (km *KeyManager) AddSigner(s Signer) error {
	if s == nil {
		return errors.New("jwtx: nil signer")
	}

	km.mu.Lock()
	defer km.mu.Unlock()

	if err := km.keys.AddSigner(s); err != nil {
		return err
	}
	km.signers = append(km.signers, s)
	return nil
}

// RetireSigner stops signing with kid. Its public key stays published so
// tokens already issued still verify.
func (km *KeyManager) RetireSigner(kid string) error {
	km.mu.Lock()
	defer km.mu.Unlock()

	if len(km.signers) <= 1 {
		return errors.New("jwtx: cannot retire the last signing key")
	}
	for i, s := range km.signers {
		if s.KID() == kid {
			km.signers = append(km.signers[:i:i], km.signers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("jwtx: signer %q not found", kid)
}
