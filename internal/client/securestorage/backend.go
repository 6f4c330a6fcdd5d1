package securestorage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/iudanet/bodykeeper/internal/codec"
	"github.com/iudanet/bodykeeper/internal/crypto"
)

// errEncryptedInPlainMode is returned when a plain-mode instance meets a
// record it has no key for
var errEncryptedInPlainMode = errors.New("encrypted record cannot be opened in plain mode")

// backend turns envelopes into stored strings and back.
// Exactly one implementation is chosen per Storage.
type backend interface {
	mode() codec.Mode
	seal(ctx context.Context, env codec.Envelope) (string, error)
	open(ctx context.Context, stored codec.Stored) (codec.Envelope, error)
}

type encryptedBackend struct {
	keys   *crypto.KeyProvider
	random io.Reader
}

func (b *encryptedBackend) mode() codec.Mode { return codec.ModeEncrypted }

func (b *encryptedBackend) seal(ctx context.Context, env codec.Envelope) (string, error) {
	key, err := b.keys.Key(ctx)
	if err != nil {
		return "", err
	}

	plaintext, err := codec.MarshalEnvelope(env)
	if err != nil {
		return "", err
	}

	iv, ciphertext, err := crypto.Encrypt(b.random, plaintext, key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt record: %w", err)
	}

	return codec.EncodeEncrypted(iv, ciphertext)
}

func (b *encryptedBackend) open(ctx context.Context, stored codec.Stored) (codec.Envelope, error) {
	// Открытые записи из другого окружения читаются как есть
	if stored.Mode == codec.ModePlain {
		return *stored.Envelope, nil
	}

	key, err := b.keys.Key(ctx)
	if err != nil {
		return codec.Envelope{}, err
	}

	plaintext, err := crypto.Decrypt(stored.IV, stored.Ciphertext, key)
	if err != nil {
		return codec.Envelope{}, err
	}

	return codec.DecodeEnvelope(plaintext)
}

type plainBackend struct{}

func (plainBackend) mode() codec.Mode { return codec.ModePlain }

func (plainBackend) seal(_ context.Context, env codec.Envelope) (string, error) {
	return codec.EncodePlain(env)
}

func (plainBackend) open(_ context.Context, stored codec.Stored) (codec.Envelope, error) {
	if stored.Mode != codec.ModePlain {
		return codec.Envelope{}, errEncryptedInPlainMode
	}
	return *stored.Envelope, nil
}
