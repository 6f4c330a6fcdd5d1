package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// NonceSize - размер nonce для AES-GCM (12 bytes стандартный размер)
	NonceSize = 12
)

// Available reports whether authenticated encryption can run with the given
// random source. A nil reader means crypto/rand.
func Available(random io.Reader) bool {
	if random == nil {
		random = rand.Reader
	}

	probe := make([]byte, NonceSize)
	if _, err := io.ReadFull(random, probe); err != nil {
		return false
	}

	_, err := newGCM(make([]byte, KeySize))
	return err == nil
}

// Encrypt шифрует данные с использованием AES-256-GCM.
// Nonce генерируется заново при каждом вызове и возвращается отдельно от
// ciphertext (ciphertext содержит auth_tag в конце).
func Encrypt(random io.Reader, plaintext, key []byte) (nonce, ciphertext []byte, err error) {
	if random == nil {
		random = rand.Reader
	}

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, NonceSize)
	if _, err := io.ReadFull(random, nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return nonce, aesGCM.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt дешифрует данные, зашифрованные с помощью Encrypt
func Decrypt(nonce, ciphertext, key []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// Дешифруем и проверяем authentication tag
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: authentication failed or corrupted data: %w", err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aesGCM, nil
}
