package crypto

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// KeyProvider derives the storage key lazily and keeps it for its lifetime.
// Derivation runs at most once; concurrent first callers wait for the same
// result.
type KeyProvider struct {
	logger   *slog.Logger
	derive   func() ([]byte, error)
	secret   string
	kdf      KDF
	salt     []byte
	fallback bool
}

// ProviderOption configures a KeyProvider
type ProviderOption func(*KeyProvider)

// WithKDF selects the key derivation function
func WithKDF(kdf KDF) ProviderOption {
	return func(p *KeyProvider) { p.kdf = kdf }
}

// WithSalt overrides the fixed application salt
func WithSalt(salt []byte) ProviderOption {
	return func(p *KeyProvider) {
		if len(salt) > 0 {
			p.salt = salt
		}
	}
}

// WithProviderLogger sets the logger used to report derivation
func WithProviderLogger(logger *slog.Logger) ProviderOption {
	return func(p *KeyProvider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewKeyProvider creates a provider for the configured secret and origin.
// An empty secret selects the fallback derivation (see ResolveSecret).
func NewKeyProvider(configuredSecret, origin string, opts ...ProviderOption) *KeyProvider {
	secret, fallback := ResolveSecret(configuredSecret, origin)

	p := &KeyProvider{
		logger:   slog.Default(),
		secret:   secret,
		kdf:      KDFPBKDF2,
		salt:     []byte(DefaultSalt),
		fallback: fallback,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.derive = sync.OnceValues(func() ([]byte, error) {
		key, err := DeriveKey(p.secret, p.salt, p.kdf)
		if err != nil {
			return nil, fmt.Errorf("failed to derive storage key: %w", err)
		}

		p.logger.Debug("storage key derived",
			"kdf", string(p.kdf),
			"fallback", p.fallback,
			"fingerprint", Fingerprint(key),
		)
		return key, nil
	})

	if fallback {
		p.logger.Warn("no storage secret configured, using origin-based fallback key")
	}

	return p
}

// Key returns the derived key, deriving it on first use
func (p *KeyProvider) Key(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.derive()
}

// Fallback reports whether the key comes from the fallback secret
func (p *KeyProvider) Fallback() bool {
	return p.fallback
}

// KDF returns the configured derivation function
func (p *KeyProvider) KDF() KDF {
	return p.kdf
}
