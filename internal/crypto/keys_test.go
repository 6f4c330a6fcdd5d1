package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSecret(t *testing.T) {
	tests := []struct {
		name         string
		configured   string
		origin       string
		wantSecret   string
		wantFallback bool
	}{
		{
			name:         "configured secret wins",
			configured:   "top-secret",
			origin:       "https://app.example.com",
			wantSecret:   "top-secret",
			wantFallback: false,
		},
		{
			name:         "fallback uses origin",
			configured:   "",
			origin:       "https://app.example.com",
			wantSecret:   "https://app.example.com" + DevKeyMarker,
			wantFallback: true,
		},
		{
			name:         "fallback without origin uses placeholder",
			configured:   "",
			origin:       "",
			wantSecret:   FallbackOrigin + DevKeyMarker,
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, fallback := ResolveSecret(tt.configured, tt.origin)
			assert.Equal(t, tt.wantSecret, secret)
			assert.Equal(t, tt.wantFallback, fallback)
		})
	}
}

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		errMsg  string
		salt    []byte
		kdf     KDF
		wantErr bool
	}{
		{
			name:   "pbkdf2",
			secret: "password",
			salt:   []byte(DefaultSalt),
			kdf:    KDFPBKDF2,
		},
		{
			name:   "empty kdf defaults to pbkdf2",
			secret: "password",
			salt:   []byte(DefaultSalt),
			kdf:    "",
		},
		{
			name:   "argon2id",
			secret: "password",
			salt:   []byte(DefaultSalt),
			kdf:    KDFArgon2id,
		},
		{
			name:    "empty secret",
			secret:  "",
			salt:    []byte(DefaultSalt),
			kdf:     KDFPBKDF2,
			wantErr: true,
			errMsg:  "secret cannot be empty",
		},
		{
			name:    "empty salt",
			secret:  "password",
			salt:    nil,
			kdf:     KDFPBKDF2,
			wantErr: true,
			errMsg:  "salt cannot be empty",
		},
		{
			name:    "unknown kdf",
			secret:  "password",
			salt:    []byte(DefaultSalt),
			kdf:     "scrypt",
			wantErr: true,
			errMsg:  "unsupported kdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveKey(tt.secret, tt.salt, tt.kdf)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, key)
				return
			}

			require.NoError(t, err)
			assert.Len(t, key, KeySize)
		})
	}
}

func TestDeriveKey_Determinism(t *testing.T) {
	key1, err := DeriveKey("secret", []byte(DefaultSalt), KDFPBKDF2)
	require.NoError(t, err)
	key2, err := DeriveKey("secret", []byte(DefaultSalt), KDFPBKDF2)
	require.NoError(t, err)

	assert.Equal(t, key1, key2, "одинаковые входные данные должны давать одинаковый ключ")
}

func TestDeriveKey_DifferentInputs(t *testing.T) {
	base, err := DeriveKey("secret", []byte(DefaultSalt), KDFPBKDF2)
	require.NoError(t, err)

	otherSecret, err := DeriveKey("secret2", []byte(DefaultSalt), KDFPBKDF2)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherSecret)

	otherSalt, err := DeriveKey("secret", []byte("another-salt"), KDFPBKDF2)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherSalt)

	otherKDF, err := DeriveKey("secret", []byte(DefaultSalt), KDFArgon2id)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherKDF)
}

func TestParseKDF(t *testing.T) {
	kdf, err := ParseKDF("")
	require.NoError(t, err)
	assert.Equal(t, KDFPBKDF2, kdf)

	kdf, err = ParseKDF("argon2id")
	require.NoError(t, err)
	assert.Equal(t, KDFArgon2id, kdf)

	_, err = ParseKDF("md5")
	assert.Error(t, err)
}
