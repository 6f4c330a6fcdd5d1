package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// KDF identifies the password-based key derivation function
type KDF string

const (
	// KDFPBKDF2 - PBKDF2-HMAC-SHA256 (по умолчанию)
	KDFPBKDF2 KDF = "pbkdf2"
	// KDFArgon2id - Argon2id с историческими параметрами клиента
	KDFArgon2id KDF = "argon2id"
)

// Параметры деривации ключа хранилища
const (
	// KeySize - длина ключа AES-256 в байтах
	KeySize = 32
	// PBKDF2Iterations - количество итераций PBKDF2
	PBKDF2Iterations = 100000
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4

	// DefaultSalt is the fixed application salt for storage key derivation
	DefaultSalt = "bodykeeper-secure-storage-v1"
	// FallbackOrigin replaces the deployment origin when none is configured
	FallbackOrigin = "bodykeeper://local"
	// DevKeyMarker is appended to the origin to build the fallback secret
	DevKeyMarker = "-bodykeeper-dev-key"
)

// ParseKDF converts a configuration string into a KDF
func ParseKDF(s string) (KDF, error) {
	switch KDF(s) {
	case KDFPBKDF2, "":
		return KDFPBKDF2, nil
	case KDFArgon2id:
		return KDFArgon2id, nil
	default:
		return "", fmt.Errorf("unknown kdf %q: use %q or %q", s, KDFPBKDF2, KDFArgon2id)
	}
}

// ResolveSecret returns the secret used for key derivation.
// A configured secret always wins. Without one the secret is built from the
// origin and DevKeyMarker, and fallback is true. The fallback secret is
// guessable by anyone who knows the origin.
func ResolveSecret(configured, origin string) (secret string, fallback bool) {
	if configured != "" {
		return configured, false
	}
	if origin == "" {
		origin = FallbackOrigin
	}
	return origin + DevKeyMarker, true
}

// DeriveKey derives a 32-byte storage key from secret and salt
func DeriveKey(secret string, salt []byte, kdf KDF) ([]byte, error) {
	if secret == "" {
		return nil, fmt.Errorf("secret cannot be empty")
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("salt cannot be empty")
	}

	switch kdf {
	case KDFPBKDF2, "":
		return pbkdf2.Key([]byte(secret), salt, PBKDF2Iterations, KeySize, sha256.New), nil
	case KDFArgon2id:
		return argon2.IDKey([]byte(secret), salt, Argon2Time, Argon2Memory, Argon2Threads, KeySize), nil
	default:
		return nil, fmt.Errorf("unsupported kdf: %s", kdf)
	}
}
